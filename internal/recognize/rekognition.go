package recognize

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/models"
)

const rekognitionModel = "aws-rekognition-detect-labels"

type rekognitionAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// Rekognition recognizes dishes from AWS Rekognition label detection.
type Rekognition struct {
	client rekognitionAPI
	log    *logger.Logger
}

// NewRekognition loads the default AWS credential chain for region. An empty
// region disables the recognizer.
func NewRekognition(ctx context.Context, region string, log *logger.Logger) (*Rekognition, error) {
	if region == "" {
		return nil, ErrDisabled
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return newRekognition(rekognition.NewFromConfig(cfg), log), nil
}

func newRekognition(client rekognitionAPI, log *logger.Logger) *Rekognition {
	if log == nil {
		log = logger.Nop()
	}
	return &Rekognition{client: client, log: log.With("component", "recognize.Rekognition")}
}

func (r *Rekognition) Name() string {
	return rekognitionModel
}

func (r *Rekognition) Recognize(ctx context.Context, img *Image) ([]models.RecognizedItem, error) {
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: img.Data},
		MaxLabels:     aws.Int32(15),
		MinConfidence: aws.Float32(60),
	})
	if err != nil {
		return nil, fmt.Errorf("rekognition DetectLabels: %w", err)
	}

	labels := make([]classification, 0, len(out.Labels))
	for _, l := range out.Labels {
		name := aws.ToString(l.Name)
		if genericLabels[normalizeLabel(name)] {
			continue
		}
		if !isFoodLabel(name) && !hasFoodParent(l) {
			continue
		}
		labels = append(labels, classification{
			Label: name,
			Score: float64(aws.ToFloat32(l.Confidence)) / 100,
		})
	}
	items := itemsFromClassifications(labels, models.ProvenanceSecondaryVision)
	if len(items) == 0 {
		return nil, ErrNoFood
	}
	return items, nil
}

func hasFoodParent(l types.Label) bool {
	for _, p := range l.Parents {
		switch aws.ToString(p.Name) {
		case "Food", "Meal", "Dish", "Beverage", "Dessert", "Fruit", "Vegetable":
			return true
		}
	}
	return false
}
