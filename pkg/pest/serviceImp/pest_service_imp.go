package serviceImp

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"krishi/entities"
	"krishi/pkg/apperr"
	"krishi/pkg/pest/classifier"
	"krishi/pkg/pest/imagestore"
	"krishi/pkg/pest/repository"
	"krishi/pkg/pest/service"
)

const historyLimit = 50

type pestService struct {
	repo  repository.DetectionRepository
	store imagestore.Store
	cls   classifier.Classifier
	log   *zap.Logger
}

func New(repo repository.DetectionRepository, store imagestore.Store, cls classifier.Classifier, log *zap.Logger) service.PestService {
	return &pestService{repo: repo, store: store, cls: cls, log: log.Named("pest")}
}

// decodeImage accepts standard padded base64, optionally behind a
// "data:<mime>;base64," prefix. Whitespace anywhere, such as line wrapping,
// is ignored.
func decodeImage(image any) ([]byte, error) {
	if image == nil {
		return nil, apperr.ErrMissingImage
	}
	s, ok := image.(string)
	if !ok {
		return nil, fmt.Errorf("image is %T: %w", image, apperr.ErrInvalidImageData)
	}
	if s == "" {
		return nil, apperr.ErrMissingImage
	}
	if strings.HasPrefix(s, "data:") {
		if _, rest, found := strings.Cut(s, ","); found {
			s = rest
		}
	}
	data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperr.ErrInvalidImageData)
	}
	if len(data) == 0 {
		return nil, apperr.ErrInvalidImageData
	}
	return data, nil
}

func (s *pestService) Detect(ctx context.Context, userID uint, image any) (classifier.Diagnosis, error) {
	data, err := decodeImage(image)
	if err != nil {
		return classifier.Diagnosis{}, err
	}

	name, err := s.store.Save(ctx, userID, data)
	if err != nil {
		return classifier.Diagnosis{}, fmt.Errorf("save image: %w", err)
	}
	d, err := s.cls.Classify(ctx, data)
	if err != nil {
		return classifier.Diagnosis{}, fmt.Errorf("classify %s: %w", name, err)
	}

	row := &entities.PestDetection{
		UserID:          userID,
		ImagePath:       name,
		PestName:        d.Name,
		ConfidenceScore: float64(d.Confidence),
		Recommendations: strings.Join(d.Recommendations, "\n"),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return classifier.Diagnosis{}, fmt.Errorf("record detection: %w", err)
	}
	s.log.Info("pest detected",
		zap.Uint("user_id", userID), zap.String("image", name),
		zap.String("pest", d.Name), zap.Int("confidence", d.Confidence))
	return d, nil
}

func (s *pestService) History(ctx context.Context, userID uint) ([]entities.PestDetection, error) {
	return s.repo.ListByUser(ctx, userID, historyLimit)
}
