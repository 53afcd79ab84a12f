// Package mongo implements the storage ports on top of the MongoDB driver.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/retry"
)

// Collection names.
const (
	HotelsCollection   = "hotels"
	BookingsCollection = "bookings"
	UsersCollection    = "users"
)

// Options configures the connection.
type Options struct {
	URI      string
	Database string

	// Timeout bounds server selection and each startup ping
	Timeout time.Duration
}

// Store owns the client and hands out repositories over one database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client and pings the primary, retrying with backoff until the server answers.
func Connect(ctx context.Context, opts Options, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetServerSelectionTimeout(opts.Timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	cfg := retry.ConnectConfig.WithOnRetry(func(err error, next time.Duration) {
		log.Warn().Err(err).Dur("retry_in", next).Msg("mongo ping failed, retrying")
	})
	err = retry.Do(ctx, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	}, cfg)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info().Str("database", opts.Database).Msg("connected to mongo")
	return &Store{client: client, db: client.Database(opts.Database)}, nil
}

// EnsureIndexes creates the indexes the repositories rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	return ensureUserIndexes(ctx, s.db.Collection(UsersCollection))
}

// Hotels returns the hotel repository.
func (s *Store) Hotels() *HotelRepository {
	return NewHotelRepository(s.db.Collection(HotelsCollection))
}

// Bookings returns the booking repository.
func (s *Store) Bookings() *BookingRepository {
	return NewBookingRepository(s.db.Collection(BookingsCollection))
}

// Users returns the user repository.
func (s *Store) Users() *UserRepository {
	return NewUserRepository(s.db.Collection(UsersCollection))
}

// Disconnect closes the client.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// objectID parses a hex identifier.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
