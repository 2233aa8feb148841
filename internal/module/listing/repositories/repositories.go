package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"travel-service/internal/module/listing/models/entity"
	"travel-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const listingCacheTTL = 5 * time.Minute

type repositories struct {
	db          *sqlx.DB
	log         *otelzap.Logger
	redisClient *redis.Client
}

type Repositories interface {
	// db
	InsertListing(ctx context.Context, listing entity.Listing) error
	UpdateListing(ctx context.Context, listing entity.Listing) error
	DeleteListing(ctx context.Context, listingID string) error
	FindListings(ctx context.Context, maxPrice float64) ([]entity.Listing, error)
	FindListingByID(ctx context.Context, listingID string) (entity.Listing, error)
	InsertReview(ctx context.Context, review entity.Review) error
	FindReviewsByListingID(ctx context.Context, listingID string) ([]entity.Review, error)
}

func New(db *sqlx.DB, log *otelzap.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
	}
}

// InsertListing implements Repositories.
func (r *repositories) InsertListing(ctx context.Context, listing entity.Listing) error {
	query := `
		INSERT INTO listings (id, host_id, name, description, location, price_per_night, created_at)
		VALUES (:id, :host_id, :name, :description, :location, :price_per_night, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, listing)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert listing: %v", err))
		return errors.InternalServerError("error insert listing")
	}
	return nil
}

// UpdateListing implements Repositories.
func (r *repositories) UpdateListing(ctx context.Context, listing entity.Listing) error {
	query := `
		UPDATE listings
		SET name = :name, description = :description, location = :location,
			price_per_night = :price_per_night, updated_at = now()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, listing)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update listing: %v", err))
		return errors.InternalServerError("error update listing")
	}

	r.invalidateCache(ctx, listing.ID.String())
	return nil
}

// DeleteListing implements Repositories.
func (r *repositories) DeleteListing(ctx context.Context, listingID string) error {
	query := `DELETE FROM listings WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, listingID)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error delete listing: %v", err))
		return errors.InternalServerError("error delete listing")
	}

	r.invalidateCache(ctx, listingID)
	return nil
}

// FindListings implements Repositories. maxPrice <= 0 disables the filter.
func (r *repositories) FindListings(ctx context.Context, maxPrice float64) ([]entity.Listing, error) {
	listings := []entity.Listing{}

	var err error
	if maxPrice > 0 {
		query := `SELECT * FROM listings WHERE price_per_night <= $1 ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &listings, query, maxPrice)
	} else {
		query := `SELECT * FROM listings ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &listings, query)
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find listings: %v", err))
		return nil, errors.InternalServerError("error find listings")
	}

	return listings, nil
}

// FindListingByID implements Repositories. Detail reads go through redis.
func (r *repositories) FindListingByID(ctx context.Context, listingID string) (entity.Listing, error) {
	cacheKey := cacheKey(listingID)

	if cached, err := r.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var listing entity.Listing
		if err := json.Unmarshal([]byte(cached), &listing); err == nil {
			return listing, nil
		}
	}

	query := `SELECT * FROM listings WHERE id = $1`
	var listing entity.Listing
	err := r.db.GetContext(ctx, &listing, query, listingID)
	if err == sql.ErrNoRows {
		return entity.Listing{}, errors.NotFound("listing not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find listing by id: %v", err))
		return entity.Listing{}, errors.InternalServerError("error find listing by id")
	}

	if payload, err := json.Marshal(listing); err == nil {
		if err := r.redisClient.Set(ctx, cacheKey, payload, listingCacheTTL).Err(); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error cache listing: %v", err))
		}
	}

	return listing, nil
}

// InsertReview implements Repositories.
func (r *repositories) InsertReview(ctx context.Context, review entity.Review) error {
	query := `
		INSERT INTO reviews (id, listing_id, user_id, rating, comment, created_at)
		VALUES (:id, :listing_id, :user_id, :rating, :comment, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, review)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert review: %v", err))
		return errors.InternalServerError("error insert review")
	}
	return nil
}

// FindReviewsByListingID implements Repositories.
func (r *repositories) FindReviewsByListingID(ctx context.Context, listingID string) ([]entity.Review, error) {
	query := `SELECT * FROM reviews WHERE listing_id = $1 ORDER BY created_at DESC`
	reviews := []entity.Review{}
	err := r.db.SelectContext(ctx, &reviews, query, listingID)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find reviews by listing id: %v", err))
		return nil, errors.InternalServerError("error find reviews by listing id")
	}
	return reviews, nil
}

func (r *repositories) invalidateCache(ctx context.Context, listingID string) {
	if err := r.redisClient.Del(ctx, cacheKey(listingID)).Err(); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error invalidate listing cache: %v", err))
	}
}

func cacheKey(listingID string) string {
	return fmt.Sprintf("listing:%s", listingID)
}
