package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
)

type bookingDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"userId,omitempty"`
	HotelID         string             `bson:"hotelId"`
	FirstName       string             `bson:"firstName"`
	LastName        string             `bson:"lastName"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone,omitempty"`
	CheckIn         time.Time          `bson:"checkIn"`
	CheckOut        time.Time          `bson:"checkOut"`
	Cost            float64            `bson:"cost"`
	Destination     string             `bson:"destination"`
	Rooms           int                `bson:"rooms"`
	Guests          int                `bson:"guests"`
	BookingDate     time.Time          `bson:"bookingDate"`
	Type            string             `bson:"type"`
	PromoCode       string             `bson:"promoCode,omitempty"`
	PaymentIntentID string             `bson:"paymentIntentId,omitempty"`
}

func toBookingDocument(b *domain.Booking) bookingDocument {
	return bookingDocument{
		UserID:          b.UserID,
		HotelID:         b.HotelID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Cost:            b.Cost,
		Destination:     b.Destination,
		Rooms:           b.Rooms,
		Guests:          b.Guests,
		BookingDate:     b.BookingDate,
		Type:            b.Type,
		PromoCode:       b.PromoCode,
		PaymentIntentID: b.PaymentIntentID,
	}
}

func (d *bookingDocument) toDomain() domain.Booking {
	return domain.Booking{
		ID:              d.ID.Hex(),
		UserID:          d.UserID,
		HotelID:         d.HotelID,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		Phone:           d.Phone,
		CheckIn:         d.CheckIn,
		CheckOut:        d.CheckOut,
		Cost:            d.Cost,
		Destination:     d.Destination,
		Rooms:           d.Rooms,
		Guests:          d.Guests,
		BookingDate:     d.BookingDate,
		Type:            d.Type,
		PromoCode:       d.PromoCode,
		PaymentIntentID: d.PaymentIntentID,
	}
}

// BookingRepository stores bookings in a collection.
type BookingRepository struct {
	coll *mongo.Collection
}

// NewBookingRepository creates a repository over coll.
func NewBookingRepository(coll *mongo.Collection) *BookingRepository {
	return &BookingRepository{coll: coll}
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *BookingRepository) List(ctx context.Context, skip, limit int64) ([]domain.Booking, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []bookingDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Booking, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc bookingDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	b := doc.toDomain()
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	doc := toBookingDocument(b)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	b.ID = doc.ID.Hex()
	return nil
}

var _ domain.BookingRepository = (*BookingRepository)(nil)
