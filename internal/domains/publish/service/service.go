package service

import (
	"context"
	"errors"
	"maps"
	"strings"
	"time"

	chainservice "stillform-backend/internal/domains/chain/service"
	"stillform-backend/internal/domains/publish/model"
	uploadmodel "stillform-backend/internal/domains/upload/model"
	workmodel "stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/infrastructure/chain"
	"stillform-backend/internal/infrastructure/queue"
	"stillform-backend/internal/shared"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/pkg/logger"
	"stillform-backend/pkg/saga"

	"github.com/hibiken/asynq"
)

// ServiceInterface - upload media and create a work in one request
type ServiceInterface interface {
	Publish(ctx context.Context, draft workmodel.Draft, file uploadmodel.File) (*model.Response, error)
}

// Uploader is implemented by the upload service
type Uploader interface {
	Upload(ctx context.Context, prefix string, file uploadmodel.File) (*uploadmodel.Result, error)
	Delete(ctx context.Context, key string) error
}

// WorkCreator is implemented by the work service
type WorkCreator interface {
	CreateWork(ctx context.Context, draft workmodel.Draft) (*workmodel.CreateWorkResponse, error)
}

// CollectionReader is implemented by *chain.Reader
type CollectionReader interface {
	ReadCollection(ctx context.Context, address string) (*chain.CollectionInfo, error)
}

type Service struct {
	uploads     Uploader
	works       WorkCreator
	collections CollectionReader
	queue       queue.Enqueuer
}

func NewService(uploads Uploader, works WorkCreator, collections CollectionReader, enqueuer queue.Enqueuer) ServiceInterface {
	return &Service{
		uploads:     uploads,
		works:       works,
		collections: collections,
		queue:       enqueuer,
	}
}

// Publish runs upload-media, verify-collection and create-work as a saga.
// A failed step undoes the upload and returns the step's own error.
func (s *Service) Publish(ctx context.Context, draft workmodel.Draft, file uploadmodel.File) (*model.Response, error) {
	// reject bad payloads before anything is uploaded
	if err := workmodel.ValidateDraft(draft); err != nil {
		return nil, err
	}

	var (
		uploaded *uploadmodel.Result
		created  *workmodel.CreateWorkResponse
	)

	run := saga.New("publish-work",
		saga.Step{
			Name: model.StepUploadMedia,
			Do: func(ctx context.Context) error {
				result, err := s.uploads.Upload(ctx, model.MediaPrefix, file)
				if err != nil {
					return err
				}
				uploaded = result
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.removeUpload(ctx, uploaded)
			},
		},
		saga.Step{
			Name: model.StepVerifyCollection,
			Do: func(ctx context.Context) error {
				return s.verifyCollection(ctx, draft)
			},
		},
		saga.Step{
			Name: model.StepCreateWork,
			Do: func(ctx context.Context) error {
				media := workmodel.Media{
					Type:  model.MediaKindOf(file),
					URL:   uploaded.GatewayURL,
					Cover: uploaded.CoverURL,
				}
				result, err := s.works.CreateWork(ctx, workmodel.WithMedia(draft, media))
				if err != nil {
					return err
				}
				created = result
				return nil
			},
		},
	)

	if err := run.Run(ctx); err != nil {
		return nil, stepError(err)
	}

	logger.Info("work published", map[string]interface{}{
		"work_id": created.ID,
		"key":     uploaded.Key,
		"cid":     uploaded.CID,
	})

	return &model.Response{Work: created, Upload: uploaded}, nil
}

func (s *Service) verifyCollection(ctx context.Context, draft workmodel.Draft) error {
	c := workmodel.Common(draft).Chain
	if c == nil || c.Type != workmodel.ChainEVM || c.ContractAddress == "" {
		return nil
	}

	if s.collections == nil {
		return chainservice.ToAppError(chain.ErrNotConfigured)
	}

	info, err := s.collections.ReadCollection(ctx, c.ContractAddress)
	if err != nil {
		return chainservice.ToAppError(err)
	}

	want := chain.ProductNormal
	if draft.Kind() == workmodel.TypeBlindbox {
		want = chain.ProductBlindbox
	}
	if info.Config.ProductType != want {
		return apperror.Validation("COLLECTION_TYPE_MISMATCH", "Collection does not match work type", map[string]string{
			"chain.contractAddress": "collection is " + strings.ToLower(info.Config.ProductType) + ", work is " + string(draft.Kind()),
		})
	}
	return nil
}

// removeUpload deletes the uploaded media and cover; keys that cannot be
// deleted now are handed to the worker.
func (s *Service) removeUpload(ctx context.Context, uploaded *uploadmodel.Result) error {
	if uploaded == nil {
		return nil
	}

	keys := []string{uploaded.Key}
	if uploaded.CoverKey != "" {
		keys = append(keys, uploaded.CoverKey)
	}

	var errs []error
	for _, key := range keys {
		err := s.uploads.Delete(ctx, key)
		if err == nil {
			continue
		}

		logger.Warn("publish compensation: delete failed, scheduling retry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})

		payload := shared.DeleteStorageObjectPayload{Key: key, Reason: "publish rolled back"}
		if qerr := s.queue.Enqueue(ctx, shared.TypeDeleteStorageObject, payload,
			asynq.Queue(shared.QueueLow),
			asynq.MaxRetry(10),
			asynq.ProcessIn(30*time.Second),
		); qerr != nil {
			errs = append(errs, errors.Join(err, qerr))
		}
	}
	return errors.Join(errs...)
}

// stepError returns the failing step's API error with the step name attached
func stepError(err error) error {
	step, _ := saga.FailedStep(err)

	appErr, ok := apperror.As(err)
	if !ok {
		return apperror.Internal("Failed to publish work", err)
	}

	fields := maps.Clone(appErr.Fields)
	if fields == nil {
		fields = map[string]string{}
	}
	fields["step"] = step

	out := *appErr
	out.Fields = fields
	return &out
}
