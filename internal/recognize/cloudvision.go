package recognize

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/models"
)

const cloudVisionModel = "gcp-vision-label-detection"

type annotateFunc func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error)

// CloudVision recognizes dishes from Google Cloud Vision label detection.
type CloudVision struct {
	annotate annotateFunc
	close    func() error
	log      *logger.Logger
}

// NewCloudVision dials the Vision API. When credentialsFile is empty the
// application default credentials are used.
func NewCloudVision(ctx context.Context, credentialsFile string, log *logger.Logger) (*CloudVision, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	cv := newCloudVision(func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
		return client.BatchAnnotateImages(ctx, req)
	}, log)
	cv.close = client.Close
	return cv, nil
}

func newCloudVision(annotate annotateFunc, log *logger.Logger) *CloudVision {
	if log == nil {
		log = logger.Nop()
	}
	return &CloudVision{annotate: annotate, log: log.With("component", "recognize.CloudVision")}
}

func (c *CloudVision) Name() string {
	return cloudVisionModel
}

func (c *CloudVision) Close() error {
	if c == nil || c.close == nil {
		return nil
	}
	return c.close()
}

func (c *CloudVision) Recognize(ctx context.Context, img *Image) ([]models.RecognizedItem, error) {
	resp, err := c.annotate(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: img.Data},
			Features: []*visionpb.Feature{{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: 15}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("vision BatchAnnotateImages: %w", err)
	}
	if resp == nil || len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return nil, ErrNoFood
	}
	r0 := resp.Responses[0]
	if r0.Error != nil && r0.Error.Message != "" {
		return nil, fmt.Errorf("vision annotate error: %s", r0.Error.Message)
	}

	labels := make([]classification, 0, len(r0.LabelAnnotations))
	for _, a := range r0.LabelAnnotations {
		if a == nil || !isFoodLabel(a.Description) {
			continue
		}
		labels = append(labels, classification{Label: a.Description, Score: float64(a.Score)})
	}
	items := itemsFromClassifications(labels, models.ProvenanceSecondaryVision)
	if len(items) == 0 {
		return nil, ErrNoFood
	}
	return items, nil
}
