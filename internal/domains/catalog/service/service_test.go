package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reservo/config"
	"reservo/infras/otel/mocks"
	s3Mocks "reservo/infras/s3/mocks"
	catalogMocks "reservo/internal/domains/catalog/mocks"
	"reservo/internal/domains/catalog/model"
	"reservo/internal/domains/catalog/model/dto"
	"reservo/internal/domains/catalog/service"
	cacheMocks "reservo/shared/cache/mocks"
	gDto "reservo/shared/dto"
	"reservo/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

type catalogFixture struct {
	repo  *catalogMocks.MockResource
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Resource
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &catalogFixture{
		repo:  catalogMocks.NewMockResource(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "reservo-assets"

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func storedResource() model.Resource {
	return model.Resource{
		ID:           "resource-1",
		Kind:         model.KindClassSession,
		Name:         "Morning Yoga",
		Weekday:      1,
		StartMinutes: 9 * 60,
		EndMinutes:   10 * 60,
		UnitPrice:    50,
		Capacity:     12,
		Active:       true,
	}
}

func createRequest() dto.CreateResourceRequest {
	return dto.CreateResourceRequest{
		Kind:      model.KindClassSession,
		Name:      "Morning Yoga",
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "10:00",
		UnitPrice: 50,
		Capacity:  12,
	}
}

func TestResourceService_Create(t *testing.T) {
	t.Run("inserts a resource without an image", func(t *testing.T) {
		f := newCatalogFixture(t)

		var inserted model.Resource
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, resource model.Resource) error {
				inserted = resource

				return nil
			})

		err := f.svc.Create(context.Background(), createRequest())
		require.NoError(t, err)

		assert.Equal(t, model.KindClassSession, inserted.Kind)
		assert.Equal(t, 9*60, inserted.StartMinutes)
		assert.Equal(t, 10*60, inserted.EndMinutes)
		assert.True(t, inserted.Active)
	})

	t.Run("uploads the image before inserting", func(t *testing.T) {
		f := newCatalogFixture(t)

		req := createRequest()
		req.Image = &multipart.FileHeader{
			Filename: "yoga.png",
			Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
		}

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "reservo-assets", model.EntityName, gomock.Any(), req.Image, gomock.Any()).
			Return("https://cdn.example.com/resource/yoga.png", nil)

		var inserted model.Resource
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, resource model.Resource) error {
				inserted = resource

				return nil
			})

		err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/resource/yoga.png", inserted.Image)
	})

	t.Run("cleans up the uploaded image when the insert fails", func(t *testing.T) {
		f := newCatalogFixture(t)

		req := createRequest()
		req.Image = &multipart.FileHeader{Filename: "yoga.png"}

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "reservo-assets", model.EntityName, gomock.Any(), req.Image, gomock.Any()).
			Return("https://cdn.example.com/resource/yoga.png", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), "reservo-assets", model.EntityName, gomock.Any()).Return(nil)

		err := f.svc.Create(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("rejects an inverted time range", func(t *testing.T) {
		f := newCatalogFixture(t)

		req := createRequest()
		req.StartTime = "10:00"
		req.EndTime = "09:00"

		err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects malformed clock times", func(t *testing.T) {
		f := newCatalogFixture(t)

		req := createRequest()
		req.StartTime = "9am"

		err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestResourceService_Get(t *testing.T) {
	t.Run("cache miss fetches from the repository", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedResource(), nil)

		res, err := f.svc.Get(context.Background(), "resource-1")
		require.NoError(t, err)

		assert.Equal(t, "Morning Yoga", res.Name)
		assert.Equal(t, "09:00", res.StartTime)
		assert.Equal(t, "10:00", res.EndTime)
	})

	t.Run("unknown resource is not found", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Resource{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestResourceService_GetAll(t *testing.T) {
	t.Run("cache miss lists and counts", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Resource{storedResource()}, nil)

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
		require.NoError(t, err)

		assert.Equal(t, 1, res.TotalData)
		require.Len(t, res.Resources, 1)
		assert.Equal(t, "resource-1", res.Resources[0].ID)
	})
}

func TestResourceService_Update(t *testing.T) {
	t.Run("updates mutable fields", func(t *testing.T) {
		f := newCatalogFixture(t)

		capacity := 20

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedResource(), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Contains(t, fields, model.FieldCapacity)

				return nil
			})

		err := f.svc.Update(context.Background(), dto.UpdateResourceRequest{Capacity: &capacity}, "resource-1")
		assert.NoError(t, err)
	})

	t.Run("unknown resource is not found", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Resource{}, nil)

		err := f.svc.Update(context.Background(), dto.UpdateResourceRequest{}, "missing")
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestResourceService_Delete(t *testing.T) {
	t.Run("deletes the row and its stored image", func(t *testing.T) {
		f := newCatalogFixture(t)

		resource := storedResource()
		resource.Image = "https://cdn.example.com/resource/yoga.png"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(resource, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().GetObjectNameFromURL("reservo-assets", resource.Image).Return("yoga.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "reservo-assets", model.EntityName, "yoga.png").Return(nil)

		err := f.svc.Delete(context.Background(), "resource-1")
		assert.NoError(t, err)
	})

	t.Run("unknown resource is not found", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Resource{}, nil)

		err := f.svc.Delete(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
