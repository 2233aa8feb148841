package usecases_test

import (
	"context"
	"testing"
	"time"

	"travel-service/internal/module/listing/mocks"
	"travel-service/internal/module/listing/models/entity"
	"travel-service/internal/module/listing/models/request"
	"travel-service/internal/module/listing/usecases"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  *otelzap.Logger
)

func setup() {
	repoMock = new(mocks.Repositories)
	logMock = log_internal.Setup()
	uc = usecases.New(repoMock, logMock)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestCreateListing(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	hostID := uuid.New()

	t.Run("success", func(t *testing.T) {
		// mock data
		payloadMock := request.CreateListing{
			Name:          "Lakeside Villa",
			Description:   "A villa by the lake",
			Location:      "Bahir Dar",
			PricePerNight: 250,
		}

		// mock repo
		repoMock.On("InsertListing", ctx, mock.AnythingOfType("entity.Listing")).Return(nil)

		// test
		resp, err := uc.CreateListing(ctx, &payloadMock, hostID.String())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, payloadMock.Name, resp.Name)
		assert.Equal(t, hostID.String(), resp.HostID)
	})

	t.Run("invalid host id", func(t *testing.T) {
		// test
		_, err := uc.CreateListing(ctx, &request.CreateListing{Name: "x", Location: "y"}, "not-a-uuid")

		// assert
		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetCode(err))
	})
}

func TestUpdateListing(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	listingID := uuid.New()
	hostID := uuid.New()

	listingMock := entity.Listing{
		ID:            listingID,
		HostID:        hostID,
		Name:          "Lakeside Villa",
		Location:      "Bahir Dar",
		PricePerNight: 250,
		CreatedAt:     time.Now().UTC(),
	}

	t.Run("success", func(t *testing.T) {
		// mock data
		payloadMock := request.UpdateListing{
			Name:          "Lakeside Villa Deluxe",
			Description:   "Renovated",
			Location:      "Bahir Dar",
			PricePerNight: 300,
		}

		// mock repo
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)
		repoMock.On("UpdateListing", ctx, mock.AnythingOfType("entity.Listing")).Return(nil)

		// test
		resp, err := uc.UpdateListing(ctx, &payloadMock, listingID.String(), hostID.String(), "host")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, payloadMock.Name, resp.Name)
		assert.Equal(t, payloadMock.PricePerNight, resp.PricePerNight)
	})

	t.Run("not the host", func(t *testing.T) {
		setup()
		// mock repo
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)

		// test
		_, err := uc.UpdateListing(ctx, &request.UpdateListing{Name: "x", Location: "y"}, listingID.String(), uuid.New().String(), "host")

		// assert
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
	})

	t.Run("admin can update any listing", func(t *testing.T) {
		setup()
		// mock data
		payloadMock := request.UpdateListing{
			Name:          "Lakeside Villa",
			Location:      "Bahir Dar",
			PricePerNight: 275,
		}

		// mock repo
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)
		repoMock.On("UpdateListing", ctx, mock.AnythingOfType("entity.Listing")).Return(nil)

		// test
		_, err := uc.UpdateListing(ctx, &payloadMock, listingID.String(), uuid.New().String(), "admin")

		// assert
		assert.NoError(t, err)
	})
}

func TestCreateReview(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	listingID := uuid.New()
	userID := uuid.New()

	listingMock := entity.Listing{
		ID:     listingID,
		HostID: uuid.New(),
		Name:   "Lakeside Villa",
	}

	t.Run("success", func(t *testing.T) {
		// mock data
		payloadMock := request.CreateReview{
			Rating:  5,
			Comment: "great stay",
		}

		// mock repo
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)
		repoMock.On("InsertReview", ctx, mock.AnythingOfType("entity.Review")).Return(nil)

		// test
		resp, err := uc.CreateReview(ctx, &payloadMock, listingID.String(), userID.String())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 5, resp.Rating)
		assert.Equal(t, listingID.String(), resp.ListingID)
	})

	t.Run("listing not found", func(t *testing.T) {
		setup()
		// mock repo
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(entity.Listing{}, errors.NotFound("listing not found"))

		// test
		_, err := uc.CreateReview(ctx, &request.CreateReview{Rating: 4}, listingID.String(), userID.String())

		// assert
		assert.Error(t, err)
		assert.Equal(t, 404, errors.GetCode(err))
	})
}
