package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmstand/internal/model"
	"farmstand/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, name string, description *string, price float64, imageURL *string, ownerID int64) (*model.Product, error) {
	args := m.Called(ctx, name, description, price, imageURL, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockImageStore is a mock implementation of storage.ImageStore.
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	args := m.Called(ctx, filename, content)
	return args.String(0), args.Error(1)
}

func newProductHandler(products *MockProductService, images *MockImageStore) *ProductHandler {
	return NewProductHandler(products, images, zerolog.Nop())
}

func withSession(r *http.Request, sess session.Session) *http.Request {
	return r.WithContext(session.NewContext(r.Context(), &sess))
}

// multipartBody builds a multipart form body for the add-product form.
func multipartBody(t *testing.T, fields map[string]string, imageName, imageContent string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(imageContent))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestProductHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*MockProductService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Default listing",
			url:  "/products",
			mockSetup: func(m *MockProductService) {
				m.On("List", mock.Anything, 0, 0).
					Return([]model.Product{
						{ID: 1, Name: "Eggs", Price: 3.5, OwnerID: 1},
						{ID: 2, Name: "Honey", Price: 8.0, OwnerID: 1},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Eggs",
		},
		{
			name: "Explicit limit and offset",
			url:  "/products?limit=5&offset=10",
			mockSetup: func(m *MockProductService) {
				m.On("List", mock.Anything, 5, 10).
					Return([]model.Product{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non-numeric limit yields 400",
			url:            "/products?limit=abc",
			mockSetup:      func(m *MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Non-numeric offset yields 400",
			url:            "/products?offset=xyz",
			mockSetup:      func(m *MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Service failure yields 500",
			url:  "/products",
			mockSetup: func(m *MockProductService) {
				m.On("List", mock.Anything, 0, 0).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := new(MockProductService)
			tt.mockSetup(products)

			h := newProductHandler(products, new(MockImageStore))

			rec := httptest.NewRecorder()
			h.List(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			products.AssertExpectations(t)
		})
	}
}

func TestProductHandler_FarmerDashboard(t *testing.T) {
	t.Run("Lists only the farmer's own products", func(t *testing.T) {
		products := new(MockProductService)
		products.On("ListByOwner", mock.Anything, int64(7)).
			Return([]model.Product{{ID: 3, Name: "Milk", Price: 2.0, OwnerID: 7}}, nil)

		h := newProductHandler(products, new(MockImageStore))

		req := withSession(httptest.NewRequest(http.MethodGet, "/farmer", nil), session.Session{UserID: 7, IsFarmer: true})
		rec := httptest.NewRecorder()
		h.FarmerDashboard(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Milk")
		products.AssertExpectations(t)
	})
}

func TestProductHandler_AddProduct(t *testing.T) {
	t.Run("Creates product without image", func(t *testing.T) {
		products := new(MockProductService)
		products.On("Create", mock.Anything, "Eggs", (*string)(nil), 3.5, (*string)(nil), int64(7)).
			Return(&model.Product{ID: 1, Name: "Eggs", Price: 3.5, OwnerID: 7}, nil)

		h := newProductHandler(products, new(MockImageStore))

		body, contentType := multipartBody(t, map[string]string{
			"name":  "Eggs",
			"price": "3.5",
		}, "", "")
		req := httptest.NewRequest(http.MethodPost, "/add-product", body)
		req.Header.Set("Content-Type", contentType)
		req = withSession(req, session.Session{UserID: 7, IsFarmer: true})

		rec := httptest.NewRecorder()
		h.AddProduct(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/farmer", rec.Header().Get("Location"))
		products.AssertExpectations(t)
	})

	t.Run("Stores uploaded image and passes its URL", func(t *testing.T) {
		imageURL := "/static/images/abc_eggs.jpg"

		products := new(MockProductService)
		products.On("Create", mock.Anything, "Eggs", mock.Anything, 3.5, &imageURL, int64(7)).
			Return(&model.Product{ID: 1, Name: "Eggs", Price: 3.5, ImageURL: &imageURL, OwnerID: 7}, nil)

		images := new(MockImageStore)
		images.On("Save", mock.Anything, "eggs.jpg", mock.Anything).
			Return(imageURL, nil)

		h := newProductHandler(products, images)

		body, contentType := multipartBody(t, map[string]string{
			"name":        "Eggs",
			"description": "Free range",
			"price":       "3.5",
		}, "eggs.jpg", "fake image bytes")
		req := httptest.NewRequest(http.MethodPost, "/add-product", body)
		req.Header.Set("Content-Type", contentType)
		req = withSession(req, session.Session{UserID: 7, IsFarmer: true})

		rec := httptest.NewRecorder()
		h.AddProduct(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		products.AssertExpectations(t)
		images.AssertExpectations(t)
	})

	t.Run("Missing name yields 400", func(t *testing.T) {
		products := new(MockProductService)
		h := newProductHandler(products, new(MockImageStore))

		body, contentType := multipartBody(t, map[string]string{"price": "3.5"}, "", "")
		req := httptest.NewRequest(http.MethodPost, "/add-product", body)
		req.Header.Set("Content-Type", contentType)
		req = withSession(req, session.Session{UserID: 7, IsFarmer: true})

		rec := httptest.NewRecorder()
		h.AddProduct(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Non-numeric price yields 400", func(t *testing.T) {
		products := new(MockProductService)
		h := newProductHandler(products, new(MockImageStore))

		body, contentType := multipartBody(t, map[string]string{
			"name":  "Eggs",
			"price": "cheap",
		}, "", "")
		req := httptest.NewRequest(http.MethodPost, "/add-product", body)
		req.Header.Set("Content-Type", contentType)
		req = withSession(req, session.Session{UserID: 7, IsFarmer: true})

		rec := httptest.NewRecorder()
		h.AddProduct(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Negative price yields 400", func(t *testing.T) {
		products := new(MockProductService)
		products.On("Create", mock.Anything, "Eggs", (*string)(nil), -1.0, (*string)(nil), int64(7)).
			Return(nil, model.ErrInvalidPrice)

		h := newProductHandler(products, new(MockImageStore))

		body, contentType := multipartBody(t, map[string]string{
			"name":  "Eggs",
			"price": "-1",
		}, "", "")
		req := httptest.NewRequest(http.MethodPost, "/add-product", body)
		req.Header.Set("Content-Type", contentType)
		req = withSession(req, session.Session{UserID: 7, IsFarmer: true})

		rec := httptest.NewRecorder()
		h.AddProduct(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "must not be negative")
	})

	t.Run("Image store failure yields 500", func(t *testing.T) {
		products := new(MockProductService)

		images := new(MockImageStore)
		images.On("Save", mock.Anything, "eggs.jpg", mock.Anything).
			Return("", errors.New("disk full"))

		h := newProductHandler(products, images)

		body, contentType := multipartBody(t, map[string]string{
			"name":  "Eggs",
			"price": "3.5",
		}, "eggs.jpg", "fake image bytes")
		req := httptest.NewRequest(http.MethodPost, "/add-product", body)
		req.Header.Set("Content-Type", contentType)
		req = withSession(req, session.Session{UserID: 7, IsFarmer: true})

		rec := httptest.NewRecorder()
		h.AddProduct(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
