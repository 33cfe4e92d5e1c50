package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"catlog/internal/domain/entity"
	"catlog/internal/domain/repository"
	mockRepo "catlog/internal/mocks/repository"
	mockSvc "catlog/internal/mocks/service"
	"catlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catServiceFixtures holds all test dependencies for cat service tests.
type catServiceFixtures struct {
	service    usecase.CatUsecase
	catRepo    *mockRepo.MockCatRepository
	imageStore *mockSvc.MockImageStore
}

func createTestCatService(t *testing.T) catServiceFixtures {
	catRepo := mockRepo.NewMockCatRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := NewCatService(catRepo, imageStore)

	return catServiceFixtures{
		service:    service,
		catRepo:    catRepo,
		imageStore: imageStore,
	}
}

func TestCatService_RegisterCat_Success(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"
	birthDate := time.Date(2021, 5, 20, 0, 0, 0, 0, time.UTC)
	input := &usecase.RegisterCatInput{
		Name:      "Mochi",
		BirthDate: &birthDate,
		Breed:     ptr("Scottish Fold"),
		Weight:    ptr(4.2),
	}

	fx.catRepo.EXPECT().
		CreateCat(ctx, mock.AnythingOfType("*entity.Cat")).
		Return(nil)

	cat, err := fx.service.RegisterCat(ctx, ownerID, input)
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.NotEqual(t, uuid.Nil, cat.ID)
	assert.Equal(t, ownerID, cat.OwnerID)
	assert.Equal(t, "Mochi", cat.Name)
	assert.Equal(t, &birthDate, cat.BirthDate)
	assert.Equal(t, "Scottish Fold", *cat.Breed)
	assert.Equal(t, 4.2, *cat.Weight)
	assert.WithinDuration(t, time.Now().UTC(), cat.CreatedAt, time.Second)
}

func TestCatService_RegisterCat_MinimalInput(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"
	input := &usecase.RegisterCatInput{Name: "Tama"}

	fx.catRepo.EXPECT().
		CreateCat(ctx, mock.AnythingOfType("*entity.Cat")).
		Return(nil)

	cat, err := fx.service.RegisterCat(ctx, ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, "Tama", cat.Name)
	assert.Nil(t, cat.BirthDate)
	assert.Nil(t, cat.Breed)
	assert.Nil(t, cat.Weight)
	assert.Nil(t, cat.ImageURL)
}

func TestCatService_GetCat_Success(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"
	catID := uuid.New()
	existingCat := &entity.Cat{
		ID:      catID,
		OwnerID: ownerID,
		Name:    "Mochi",
	}

	fx.catRepo.EXPECT().
		FindCatByID(ctx, catID, ownerID).
		Return(existingCat, nil)

	cat, err := fx.service.GetCat(ctx, ownerID, catID)
	require.NoError(t, err)
	assert.Equal(t, existingCat, cat)
}

func TestCatService_ListCats_Success(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"
	cats := []*entity.Cat{
		{ID: uuid.New(), OwnerID: ownerID, Name: "Mochi"},
		{ID: uuid.New(), OwnerID: ownerID, Name: "Tama"},
	}

	fx.catRepo.EXPECT().
		FindCatsByOwner(ctx, ownerID).
		Return(cats, nil)

	result, err := fx.service.ListCats(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, cats, result)
}

func TestCatService_ListCats_Empty(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"

	fx.catRepo.EXPECT().
		FindCatsByOwner(ctx, ownerID).
		Return([]*entity.Cat{}, nil)

	result, err := fx.service.ListCats(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCatService_UpdateCat_Success(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"
	catID := uuid.New()
	input := &usecase.UpdateCatInput{
		Name:   ptr("Mochi II"),
		Weight: ptr(4.8),
	}
	updatedCat := &entity.Cat{
		ID:      catID,
		OwnerID: ownerID,
		Name:    "Mochi II",
		Weight:  ptr(4.8),
	}

	fx.catRepo.EXPECT().
		UpdateCat(ctx, catID, ownerID, repository.CatUpdate{
			Name:   ptr("Mochi II"),
			Weight: ptr(4.8),
		}).
		Return(nil)

	fx.catRepo.EXPECT().
		FindCatByID(ctx, catID, ownerID).
		Return(updatedCat, nil)

	cat, err := fx.service.UpdateCat(ctx, ownerID, catID, input)
	require.NoError(t, err)
	assert.Equal(t, "Mochi II", cat.Name)
	assert.Equal(t, 4.8, *cat.Weight)
}

func TestCatService_UpdateCat_EmptyPatchSkipsWrite(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"
	catID := uuid.New()
	existingCat := &entity.Cat{
		ID:      catID,
		OwnerID: ownerID,
		Name:    "Mochi",
	}

	// No UpdateCat expectation: an empty patch must not reach the write path.
	fx.catRepo.EXPECT().
		FindCatByID(ctx, catID, ownerID).
		Return(existingCat, nil)

	cat, err := fx.service.UpdateCat(ctx, ownerID, catID, &usecase.UpdateCatInput{})
	require.NoError(t, err)
	assert.Equal(t, existingCat, cat)
}

func TestCatService_DeleteCat_Success(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"
	catID := uuid.New()

	fx.catRepo.EXPECT().
		DeleteCat(ctx, catID, ownerID).
		Return(nil)

	err := fx.service.DeleteCat(ctx, ownerID, catID, true)
	assert.NoError(t, err)
}

func TestCatService_UploadCatImage_Success(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"
	catID := uuid.New()
	body := strings.NewReader("png bytes")
	imageRef := "cats/" + catID.String() + "/profile.png"

	existingCat := &entity.Cat{ID: catID, OwnerID: ownerID, Name: "Mochi"}
	updatedCat := &entity.Cat{ID: catID, OwnerID: ownerID, Name: "Mochi", ImageURL: &imageRef}

	fx.catRepo.EXPECT().
		FindCatByID(ctx, catID, ownerID).
		Return(existingCat, nil).
		Once()

	fx.imageStore.EXPECT().
		SaveCatImage(ctx, catID, "image/png", body).
		Return(imageRef, nil)

	fx.catRepo.EXPECT().
		UpdateCat(ctx, catID, ownerID, repository.CatUpdate{ImageURL: &imageRef}).
		Return(nil)

	fx.catRepo.EXPECT().
		FindCatByID(ctx, catID, ownerID).
		Return(updatedCat, nil).
		Once()

	cat, err := fx.service.UploadCatImage(ctx, ownerID, catID, "image/png", body)
	require.NoError(t, err)
	require.NotNil(t, cat.ImageURL)
	assert.Equal(t, imageRef, *cat.ImageURL)
}

func TestCatService_UploadCatImage_ReplacesPreviousImage(t *testing.T) {
	fx := createTestCatService(t)

	ctx := context.Background()
	ownerID := "owner-123"
	catID := uuid.New()
	body := strings.NewReader("jpeg bytes")
	oldRef := "cats/" + catID.String() + "/profile.png"
	newRef := "cats/" + catID.String() + "/profile.jpg"

	existingCat := &entity.Cat{ID: catID, OwnerID: ownerID, Name: "Mochi", ImageURL: &oldRef}
	updatedCat := &entity.Cat{ID: catID, OwnerID: ownerID, Name: "Mochi", ImageURL: &newRef}

	fx.catRepo.EXPECT().
		FindCatByID(ctx, catID, ownerID).
		Return(existingCat, nil).
		Once()

	fx.imageStore.EXPECT().
		SaveCatImage(ctx, catID, "image/jpeg", body).
		Return(newRef, nil)

	fx.catRepo.EXPECT().
		UpdateCat(ctx, catID, ownerID, repository.CatUpdate{ImageURL: &newRef}).
		Return(nil)

	fx.imageStore.EXPECT().
		DeleteCatImage(ctx, oldRef).
		Return(nil)

	fx.catRepo.EXPECT().
		FindCatByID(ctx, catID, ownerID).
		Return(updatedCat, nil).
		Once()

	cat, err := fx.service.UploadCatImage(ctx, ownerID, catID, "image/jpeg", body)
	require.NoError(t, err)
	assert.Equal(t, newRef, *cat.ImageURL)
}
