package client

import (
	"context"

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// Classification is a classify response: the detection plus the stored image
// path the server returns when uploads are kept.
type Classification struct {
	domain.Classification
	ImagePath string `json:"image_path,omitempty"`
}

// Classify uploads a device photo for classification.
func (c *Client) Classify(ctx context.Context, filename string, data []byte) (*Classification, error) {
	var out Classification
	files := []FormFile{{Field: "image", Filename: filename, Data: data}}
	if err := c.postForm(ctx, "/api/v1/classify", nil, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
