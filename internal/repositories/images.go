package repositories

import "encoding/json"

// listing images are stored as a JSON array column

func decodeImages(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func encodeImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}
