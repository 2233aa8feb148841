package usecases

import (
	"context"
	"time"

	"travel-service/internal/module/listing/models/entity"
	"travel-service/internal/module/listing/models/request"
	"travel-service/internal/module/listing/models/response"
	"travel-service/internal/module/listing/repositories"
	"travel-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	CreateListing(ctx context.Context, payload *request.CreateListing, hostID string) (response.Listing, error)
	UpdateListing(ctx context.Context, payload *request.UpdateListing, listingID string, userID string, userRole string) (response.Listing, error)
	DeleteListing(ctx context.Context, listingID string, userID string, userRole string) error
	ShowListings(ctx context.Context, maxPrice float64) ([]response.Listing, error)
	GetListing(ctx context.Context, listingID string) (response.Listing, error)
	CreateReview(ctx context.Context, payload *request.CreateReview, listingID string, userID string) (response.Review, error)
	ShowReviews(ctx context.Context, listingID string) ([]response.Review, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) CreateListing(ctx context.Context, payload *request.CreateListing, hostID string) (response.Listing, error) {
	hostUUID, err := uuid.Parse(hostID)
	if err != nil {
		return response.Listing{}, errors.BadRequest("invalid host id")
	}

	listing := entity.Listing{
		ID:            uuid.New(),
		HostID:        hostUUID,
		Name:          payload.Name,
		Description:   payload.Description,
		Location:      payload.Location,
		PricePerNight: payload.PricePerNight,
		CreatedAt:     time.Now().UTC(),
	}

	if err := u.repo.InsertListing(ctx, listing); err != nil {
		return response.Listing{}, err
	}

	return listingResponse(listing), nil
}

func (u *usecase) UpdateListing(ctx context.Context, payload *request.UpdateListing, listingID string, userID string, userRole string) (response.Listing, error) {
	listing, err := u.repo.FindListingByID(ctx, listingID)
	if err != nil {
		return response.Listing{}, err
	}

	if listing.HostID.String() != userID && userRole != "admin" {
		return response.Listing{}, errors.ForbiddenError("only the host can update this listing")
	}

	listing.Name = payload.Name
	listing.Description = payload.Description
	listing.Location = payload.Location
	listing.PricePerNight = payload.PricePerNight

	if err := u.repo.UpdateListing(ctx, listing); err != nil {
		return response.Listing{}, err
	}

	return listingResponse(listing), nil
}

func (u *usecase) DeleteListing(ctx context.Context, listingID string, userID string, userRole string) error {
	listing, err := u.repo.FindListingByID(ctx, listingID)
	if err != nil {
		return err
	}

	if listing.HostID.String() != userID && userRole != "admin" {
		return errors.ForbiddenError("only the host can delete this listing")
	}

	return u.repo.DeleteListing(ctx, listingID)
}

func (u *usecase) ShowListings(ctx context.Context, maxPrice float64) ([]response.Listing, error) {
	listings, err := u.repo.FindListings(ctx, maxPrice)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Listing, 0, len(listings))
	for _, listing := range listings {
		resp = append(resp, listingResponse(listing))
	}
	return resp, nil
}

func (u *usecase) GetListing(ctx context.Context, listingID string) (response.Listing, error) {
	listing, err := u.repo.FindListingByID(ctx, listingID)
	if err != nil {
		return response.Listing{}, err
	}
	return listingResponse(listing), nil
}

func (u *usecase) CreateReview(ctx context.Context, payload *request.CreateReview, listingID string, userID string) (response.Review, error) {
	listing, err := u.repo.FindListingByID(ctx, listingID)
	if err != nil {
		return response.Review{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return response.Review{}, errors.BadRequest("invalid user id")
	}

	review := entity.Review{
		ID:        uuid.New(),
		ListingID: listing.ID,
		UserID:    userUUID,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.repo.InsertReview(ctx, review); err != nil {
		return response.Review{}, err
	}

	return reviewResponse(review), nil
}

func (u *usecase) ShowReviews(ctx context.Context, listingID string) ([]response.Review, error) {
	if _, err := u.repo.FindListingByID(ctx, listingID); err != nil {
		return nil, err
	}

	reviews, err := u.repo.FindReviewsByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Review, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, reviewResponse(review))
	}
	return resp, nil
}

func listingResponse(listing entity.Listing) response.Listing {
	return response.Listing{
		ID:            listing.ID.String(),
		HostID:        listing.HostID.String(),
		Name:          listing.Name,
		Description:   listing.Description,
		Location:      listing.Location,
		PricePerNight: listing.PricePerNight,
		CreatedAt:     listing.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func reviewResponse(review entity.Review) response.Review {
	return response.Review{
		ID:        review.ID.String(),
		ListingID: review.ListingID.String(),
		UserID:    review.UserID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
