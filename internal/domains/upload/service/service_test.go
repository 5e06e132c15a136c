package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stillform-backend/internal/domains/upload/model"
	"stillform-backend/internal/infrastructure/storage"
	"stillform-backend/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	objects   map[string][]byte
	putErr    error
	omitCID   bool
	deleteErr error
}

func newFakeStore() *fakeStore { return &fakeStore{objects: map[string][]byte{}} }

func (f *fakeStore) Put(_ context.Context, key string, data []byte, _ string) (*storage.StoredObject, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.objects[key] = data
	if f.omitCID {
		return nil, storage.ErrMissingCID
	}
	return &storage.StoredObject{Key: key, CID: "cid-" + key, Size: int64(len(data))}, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}

type fakeImages struct {
	resizable bool
	err       error
}

func (f fakeImages) IsResizable([]byte) bool { return f.resizable }

func (f fakeImages) Cover([]byte) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("cover"), nil
}

func fixedClock(svc ServiceInterface) {
	svc.(*Service).now = func() time.Time { return time.UnixMilli(1700000000000) }
}

func TestUploadBuildsKeyAndGatewayURL(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, fakeImages{}, "https://ipfs.example/ipfs")
	fixedClock(svc)

	res, err := svc.Upload(context.Background(), "", model.File{Name: "my art.png", Data: []byte("x")})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "uploads/1700000000000-my_art.png", res.Key)
	assert.Equal(t, "cid-"+res.Key, res.CID)
	assert.Equal(t, "https://ipfs.example/ipfs/cid-"+res.Key, res.GatewayURL)
	assert.Empty(t, res.CoverURL)
}

func TestUploadCustomPrefixAndCover(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, fakeImages{resizable: true}, "https://gw/")
	fixedClock(svc)

	res, err := svc.Upload(context.Background(), "/works/", model.File{Name: "../a.jpg", Data: []byte("x")})
	require.NoError(t, err)

	assert.Equal(t, "works/1700000000000-a.jpg", res.Key)
	assert.Equal(t, res.Key+".cover.jpg", res.CoverKey)
	assert.True(t, strings.HasPrefix(res.CoverURL, "https://gw/cid-"))
	assert.Len(t, store.objects, 2)
}

func TestUploadCoverFailureIsTolerated(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, fakeImages{resizable: true, err: errors.New("decode")}, "https://gw/")

	res, err := svc.Upload(context.Background(), "", model.File{Name: "a.png", Data: []byte("x")})
	require.NoError(t, err)
	assert.Empty(t, res.CoverKey)
	assert.Len(t, store.objects, 1)
}

func TestUploadErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewService(newFakeStore(), nil, "").Upload(ctx, "", model.File{Name: "a.png"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = NewService(nil, nil, "").Upload(ctx, "", model.File{Name: "a.png", Data: []byte("x")})
	assert.True(t, apperror.IsKind(err, apperror.KindUpstream))

	failing := newFakeStore()
	failing.putErr = errors.New("connection refused")
	_, err = NewService(failing, nil, "").Upload(ctx, "", model.File{Name: "a.png", Data: []byte("x")})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUpstream, appErr.Kind)
	assert.Equal(t, 500, appErr.HTTPStatus())

	noCID := newFakeStore()
	noCID.omitCID = true
	_, err = NewService(noCID, nil, "").Upload(ctx, "", model.File{Name: "a.png", Data: []byte("x")})
	assert.ErrorIs(t, err, storage.ErrMissingCID)
}

func TestDelete(t *testing.T) {
	store := newFakeStore()
	store.objects["k"] = []byte("x")
	svc := NewService(store, nil, "")

	require.NoError(t, svc.Delete(context.Background(), "k"))
	assert.Empty(t, store.objects)

	store.deleteErr = errors.New("boom")
	assert.Error(t, svc.Delete(context.Background(), "k"))
}
