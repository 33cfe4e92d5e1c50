package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"catlog/internal/delivery/http/middleware"
	"catlog/internal/domain/entity"
	domainerrors "catlog/internal/domain/errors"
	"catlog/internal/infra/metrics"
	mockUC "catlog/internal/mocks/usecase"
	"catlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOwnerID = "owner-123"

// catHandlerFixtures holds all test dependencies for cat handler tests.
type catHandlerFixtures struct {
	handler *CatHandler
	catUC   *mockUC.MockCatUsecase
}

func createTestCatHandler(t *testing.T) catHandlerFixtures {
	catUC := mockUC.NewMockCatUsecase(t)
	handler := NewCatHandler(CatHandlerParams{
		CatUC:   catUC,
		Metrics: metrics.New(),
	})

	return catHandlerFixtures{handler: handler, catUC: catUC}
}

// newTestContext wraps req in an echo context with the authenticated owner
// already set, the way the auth middleware leaves it.
func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set(middleware.KeyOwnerID, testOwnerID)

	return c, rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestCatHandler_RegisterCat(t *testing.T) {
	fx := createTestCatHandler(t)

	cat := &entity.Cat{
		ID:        uuid.New(),
		OwnerID:   testOwnerID,
		Name:      "Mochi",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	fx.catUC.EXPECT().
		RegisterCat(mock.Anything, testOwnerID, mock.MatchedBy(func(input *usecase.RegisterCatInput) bool {
			return input.Name == "Mochi"
		})).
		Return(cat, nil)

	c, rec := newTestContext(jsonRequest(http.MethodPost, "/cats", `{"name":"Mochi"}`))

	require.NoError(t, fx.handler.RegisterCat(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "Mochi")
}

func TestCatHandler_RegisterCat_InvalidJSON(t *testing.T) {
	fx := createTestCatHandler(t)

	c, rec := newTestContext(jsonRequest(http.MethodPost, "/cats", `{"name":`))

	require.NoError(t, fx.handler.RegisterCat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCatHandler_RegisterCat_MissingOwner(t *testing.T) {
	fx := createTestCatHandler(t)

	// No owner on the context, as if the auth middleware never ran.
	req := jsonRequest(http.MethodPost, "/cats", `{"name":"Mochi"}`)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, fx.handler.RegisterCat(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestCatHandler_RegisterCat_ValidationError(t *testing.T) {
	fx := createTestCatHandler(t)

	fx.catUC.EXPECT().
		RegisterCat(mock.Anything, testOwnerID, mock.Anything).
		Return(nil, domainerrors.NewValidationError("name", "name is required"))

	c, rec := newTestContext(jsonRequest(http.MethodPost, "/cats", `{"name":""}`))

	require.NoError(t, fx.handler.RegisterCat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), `"details":"name"`)
}

func TestCatHandler_ListCats(t *testing.T) {
	fx := createTestCatHandler(t)

	cats := []*entity.Cat{
		{ID: uuid.New(), OwnerID: testOwnerID, Name: "Mochi"},
		{ID: uuid.New(), OwnerID: testOwnerID, Name: "Tama"},
	}
	fx.catUC.EXPECT().ListCats(mock.Anything, testOwnerID).Return(cats, nil)

	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/cats", nil))

	require.NoError(t, fx.handler.ListCats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mochi")
	assert.Contains(t, rec.Body.String(), "Tama")
}

func TestCatHandler_GetCat_InvalidID(t *testing.T) {
	fx := createTestCatHandler(t)

	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/cats/not-a-uuid", nil))
	c.SetParamNames("catId")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fx.handler.GetCat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestCatHandler_GetCat_NotFound(t *testing.T) {
	fx := createTestCatHandler(t)

	catID := uuid.New()
	fx.catUC.EXPECT().
		GetCat(mock.Anything, testOwnerID, catID).
		Return(nil, domainerrors.NewNotFoundError("cat", catID.String()))

	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/cats/"+catID.String(), nil))
	c.SetParamNames("catId")
	c.SetParamValues(catID.String())

	require.NoError(t, fx.handler.GetCat(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAT_NOT_FOUND")
}

func TestCatHandler_UpdateCat(t *testing.T) {
	fx := createTestCatHandler(t)

	catID := uuid.New()
	weight := 4.2
	updated := &entity.Cat{ID: catID, OwnerID: testOwnerID, Name: "Mochi", Weight: &weight}
	fx.catUC.EXPECT().
		UpdateCat(mock.Anything, testOwnerID, catID, mock.MatchedBy(func(input *usecase.UpdateCatInput) bool {
			return input.Name == nil && input.Weight != nil && *input.Weight == 4.2
		})).
		Return(updated, nil)

	c, rec := newTestContext(jsonRequest(http.MethodPatch, "/cats/"+catID.String(), `{"weight":4.2}`))
	c.SetParamNames("catId")
	c.SetParamValues(catID.String())

	require.NoError(t, fx.handler.UpdateCat(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"weight":4.2`)
}

func TestCatHandler_DeleteCat_RequiresConfirmation(t *testing.T) {
	fx := createTestCatHandler(t)

	catID := uuid.New()
	fx.catUC.EXPECT().
		DeleteCat(mock.Anything, testOwnerID, catID, false).
		Return(domainerrors.ErrConfirmationRequired)

	c, rec := newTestContext(httptest.NewRequest(http.MethodDelete, "/cats/"+catID.String(), nil))
	c.SetParamNames("catId")
	c.SetParamValues(catID.String())

	require.NoError(t, fx.handler.DeleteCat(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONFIRMATION_REQUIRED")
}

func TestCatHandler_DeleteCat_Confirmed(t *testing.T) {
	fx := createTestCatHandler(t)

	catID := uuid.New()
	fx.catUC.EXPECT().
		DeleteCat(mock.Anything, testOwnerID, catID, true).
		Return(nil)

	c, rec := newTestContext(httptest.NewRequest(http.MethodDelete, "/cats/"+catID.String()+"?confirm=true", nil))
	c.SetParamNames("catId")
	c.SetParamValues(catID.String())

	require.NoError(t, fx.handler.DeleteCat(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cat deleted successfully")
}

func TestCatHandler_UploadCatImage(t *testing.T) {
	fx := createTestCatHandler(t)

	catID := uuid.New()
	imageURL := "http://localhost:8080/images/cats/" + catID.String() + "/profile.png"
	updated := &entity.Cat{ID: catID, OwnerID: testOwnerID, Name: "Mochi", ImageURL: &imageURL}
	fx.catUC.EXPECT().
		UploadCatImage(mock.Anything, testOwnerID, catID, "image/png", mock.Anything).
		Return(updated, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="image"; filename="mochi.png"`)
	partHeader.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte("png bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/cats/"+catID.String()+"/image", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	c, rec := newTestContext(req)
	c.SetParamNames("catId")
	c.SetParamValues(catID.String())

	require.NoError(t, fx.handler.UploadCatImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile.png")
}

func TestCatHandler_UploadCatImage_MissingFile(t *testing.T) {
	fx := createTestCatHandler(t)

	catID := uuid.New()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/cats/"+catID.String()+"/image", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	c, rec := newTestContext(req)
	c.SetParamNames("catId")
	c.SetParamValues(catID.String())

	require.NoError(t, fx.handler.UploadCatImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image file is required")
}
