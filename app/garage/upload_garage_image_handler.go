package garage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"parkex/pkg/aws"
	"parkex/pkg/config"
	"parkex/pkg/events"
	"parkex/pkg/httperror"
)

type UploadGarageImageHandler struct {
	repository     Repository
	bucket         *aws.S3
	appConfig      *config.AppConfig
	eventPublisher events.Publisher
}

func NewUploadGarageImageHandler(repository Repository, bucket *aws.S3, appConfig *config.AppConfig, eventPublisher events.Publisher) *UploadGarageImageHandler {
	return &UploadGarageImageHandler{
		repository:     repository,
		bucket:         bucket,
		appConfig:      appConfig,
		eventPublisher: eventPublisher,
	}
}

type UploadGarageImageRequest struct {
	GarageID string `params:"id"`
}

type UploadGarageImageResponse struct {
	GarageID string `json:"garage_id"`
	ImageID  string `json:"image_id"`
	ImageURL string `json:"image_url"`
}

func (h *UploadGarageImageHandler) Handle(ctx context.Context, req *UploadGarageImageRequest) (*UploadGarageImageResponse, error) {
	fiberCtx := ctx.Value("fiber")
	if fiberCtx == nil {
		return nil, httperror.InternalServerError("garage.upload.no_context", "Fiber context not found", nil)
	}

	c, ok := fiberCtx.(*fiber.Ctx)
	if !ok {
		return nil, httperror.InternalServerError("garage.upload.invalid_context", "Invalid Fiber context", nil)
	}

	userID := ctx.Value("UserID").(string)

	g, err := h.repository.GetGarage(ctx, req.GarageID)
	if err != nil {
		return nil, httperror.NotFound("garage.upload.not_found", "Listing not found.", nil)
	}
	if g.OwnerID != userID {
		return nil, httperror.Forbidden("garage.upload.forbidden", "You are not authorized to upload images for this listing.", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return nil, httperror.BadRequest("garage.upload.missing_file", "Image file is required (use 'image' field)", fiber.Map{"error": err.Error()})
	}

	const maxFileSize = 5 * 1024 * 1024
	if file.Size > maxFileSize {
		return nil, httperror.BadRequest("garage.upload.file_too_large", "File size must not exceed 5MB",
			fiber.Map{
				"size_mb": float64(file.Size) / 1024 / 1024,
				"max_mb":  5,
			})
	}

	contentType := file.Header.Get("Content-Type")

	allowedTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
	}
	if !allowedTypes[contentType] {
		return nil, httperror.BadRequest("garage.upload.invalid_content_type", "Only PNG, JPEG/JPG images are allowed",
			fiber.Map{
				"received": contentType,
				"allowed":  []string{"image/png", "image/jpeg", "image/jpg"},
			})
	}

	fileReader, err := file.Open()
	if err != nil {
		return nil, httperror.InternalServerError("garage.upload.file_open_error", "Failed to open uploaded file", err.Error())
	}
	defer fileReader.Close()

	fileBytes, err := io.ReadAll(fileReader)
	if err != nil {
		return nil, httperror.InternalServerError("garage.upload.file_read_error", "Failed to read file content", err.Error())
	}

	return h.processUpload(ctx, req.GarageID, fileBytes, contentType)
}

func (h *UploadGarageImageHandler) processUpload(ctx context.Context, garageID string, imageData []byte, contentType string) (*UploadGarageImageResponse, error) {
	key := fmt.Sprintf("garages/%s/%s%s", garageID, uuid.New().String(), extensionFor(contentType))

	if err := h.bucket.Upload(key, imageData); err != nil {
		return nil, httperror.InternalServerError("garage.upload.store_failed", "Failed to upload image to storage", err.Error())
	}

	imageURL := h.imageURL(key)

	savedImage, err := h.repository.SaveImage(ctx, garageID, imageURL)
	if err != nil {
		_ = h.bucket.Delete(key)
		return nil, httperror.InternalServerError("garage.upload.save_failed", "Failed to save image metadata", err.Error())
	}

	if h.eventPublisher != nil {
		headers := events.Headers{
			TraceID:       events.GenerateTraceID(),
			CorrelationID: events.GenerateCorrelationID(),
			Service:       "parkex",
		}

		event := events.NewEvent(events.GarageImageUploadedEvent, events.EventVersionV1, events.GarageImageUploadedPayload{
			ID:        savedImage.ID,
			GarageID:  garageID,
			ImageURL:  imageURL,
			CreatedAt: time.Now(),
		}, headers)

		if err := h.eventPublisher.Publish(ctx, events.GarageExchange, event, headers); err != nil {
			zap.L().Error("Failed to publish garage.image.uploaded event",
				zap.String("imageID", savedImage.ID),
				zap.Error(err),
			)
		}
	}

	return &UploadGarageImageResponse{
		GarageID: garageID,
		ImageID:  savedImage.ID,
		ImageURL: savedImage.ImageURL,
	}, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	default:
		return ".jpg"
	}
}

func (h *UploadGarageImageHandler) imageURL(key string) string {
	if h.appConfig.AWSEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", h.appConfig.AWSEndpoint, h.appConfig.AWSBucket, key)
	}

	if h.appConfig.AWSDefaultRegion != "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", h.appConfig.AWSBucket, h.appConfig.AWSDefaultRegion, key)
	}

	return key
}
