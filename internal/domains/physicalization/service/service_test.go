package service

import (
	"context"
	"encoding/json"
	"testing"

	"stillform-backend/internal/domains/physicalization/model"
	"stillform-backend/internal/domains/physicalization/repository"
	workModel "stillform-backend/internal/domains/work/model"
	workRepository "stillform-backend/internal/domains/work/repository"
	"stillform-backend/internal/infrastructure/docstore"
	"stillform-backend/internal/infrastructure/queue"
	"stillform-backend/internal/shared"
	"stillform-backend/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (ServiceInterface, *queue.LogEnqueuer, workRepository.RepositoryInterface) {
	t.Helper()
	ctx := context.Background()

	workStore := docstore.NewMemory[workModel.Work]()
	_, err := workStore.Seed(ctx, workModel.SeedWorks())
	require.NoError(t, err)

	store := docstore.NewMemory[model.Physicalization]()
	_, err = store.Seed(ctx, model.SeedPhysicalizations())
	require.NoError(t, err)

	works := workRepository.NewRepository(workStore)
	q := queue.NewLogEnqueuer()
	return NewService(repository.NewRepository(store), works, q), q, works
}

func TestRequestEnqueuesNotification(t *testing.T) {
	svc, q, works := setup(t)
	ctx := context.Background()

	before, err := works.GetByID(ctx, "1")
	require.NoError(t, err)

	res, err := svc.Request(ctx, "0xabc", model.RequestPhysicalizationRequest{
		WorkID:       "1",
		ShippingInfo: &model.ShippingInfo{Address: "1 Gallery Road", Carrier: "DHL"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Physicalization request successful", res.Message)

	tasks := q.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, shared.TypePhysicalizationRequested, tasks[0].Type)

	var payload shared.PhysicalizationRequestedPayload
	require.NoError(t, json.Unmarshal(tasks[0].Payload, &payload))
	assert.Equal(t, "1", payload.WorkID)
	assert.Equal(t, "0xabc", payload.WalletAddress)
	assert.Equal(t, "DHL", payload.ShippingInfo.Carrier)

	// the work is left untouched
	after, err := works.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRequestErrors(t *testing.T) {
	svc, q, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Request(ctx, "0xabc", model.RequestPhysicalizationRequest{WorkID: "  "})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "Work ID is required", appErr.Message)

	_, err = svc.Request(ctx, "0xabc", model.RequestPhysicalizationRequest{WorkID: "missing"})
	appErr, ok = apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "Work not found", appErr.Message)

	assert.Empty(t, q.Tasks())
}

func TestGetByIDIncludesTimeline(t *testing.T) {
	svc, _, _ := setup(t)

	view, err := svc.GetByID(context.Background(), "phy-001")
	require.NoError(t, err)
	assert.Equal(t, model.StatusShipped, view.Status)
	assert.Len(t, view.Timeline, 3)
	require.NotNil(t, view.Work)
	assert.Equal(t, "Ethereal Dreams", view.Work.Title)

	_, err = svc.GetByID(context.Background(), "phy-999")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestListForOwner(t *testing.T) {
	svc, _, _ := setup(t)

	views, err := svc.ListForOwner(context.Background(), "0xDEF...456")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "phy-001", views[0].PhysicalizationID)
	assert.Nil(t, views[0].Timeline)

	views, err = svc.ListForOwner(context.Background(), "0xnobody")
	require.NoError(t, err)
	assert.Empty(t, views)
}
