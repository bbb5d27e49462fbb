package shipping

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// attachImages uploads the images attached to the input line items, matched
// to the created items positionally. Every image is independent: a failure is
// logged and the next image is attempted. The step collects whatever subset
// succeeded and never fails the run.
func (r *run) attachImages(ctx context.Context) error {
	for i, item := range r.input.Items {
		if len(item.Images) == 0 {
			continue
		}

		created := r.entities.Items[i]
		if created.ID == 0 {
			r.p.log.Warn("skipping images, created line item missing",
				zap.String("item", item.Name))

			continue
		}

		for j, img := range item.Images {
			attached, err := r.attachImage(ctx, created.ID, j, img)
			if err != nil {
				r.p.log.Warn("unable to attach image",
					zap.String("item", item.Name),
					zap.Int("image", j+1),
					zap.Error(err))

				continue
			}

			r.entities.Images = append(r.entities.Images, *attached)
		}
	}

	r.countEntities(StateAttachingImages, int64(len(r.entities.Images)))

	return nil
}

func (r *run) attachImage(ctx context.Context, itemID, idx int, img model.ImageRef) (*model.Image, error) {
	description := img.Name
	if description == "" {
		description = fmt.Sprintf("Image %d for item #%d", idx+1, itemID)
	}

	imageType := img.Type
	if imageType != model.ImageTypeLogo && imageType != model.ImageTypeArtwork {
		imageType = model.ImageTypeOther
	}

	if len(img.Data) > 0 {
		return r.p.collab.Images.CreateImage(ctx, model.ImageRequest{
			ItemID:      itemID,
			Description: description,
			Type:        imageType,
			Data:        img.Data,
		})
	}

	return r.p.collab.Images.CreateImageFromURL(ctx, model.ImageFromURLRequest{
		ItemID:      itemID,
		URL:         img.URL,
		Description: description,
		Type:        imageType,
	})
}
