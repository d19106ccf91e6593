package compositor

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/sync/errgroup"
)

// decodeAll decodes every payload concurrently and joins all-or-nothing:
// the first failure cancels the remaining work and aborts the composite.
// Results keep input order regardless of completion order.
func decodeAll(ctx context.Context, payloads [][]byte) ([]image.Image, error) {
	imgs := make([]image.Image, len(payloads))
	g, ctx := errgroup.WithContext(ctx)
	for i, payload := range payloads {
		i, payload := i, payload
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, _, err := image.Decode(bytes.NewReader(payload))
			if err != nil {
				return &DecodeError{Index: i, Err: err}
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}
