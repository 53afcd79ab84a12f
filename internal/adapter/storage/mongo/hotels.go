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

type hotelDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	HomeDescription string             `bson:"homeDescription"`
	Address         string             `bson:"address,omitempty"`
	City            string             `bson:"city"`
	State           string             `bson:"state,omitempty"`
	Country         string             `bson:"country"`
	Location        string             `bson:"location,omitempty"`
	Description     string             `bson:"description"`
	Type            []string           `bson:"type"`
	StarRating      int                `bson:"starRating"`
	Facilities      []string           `bson:"facilities"`
	PricePerNight   float64            `bson:"pricePerNight"`
	AdultCount      int                `bson:"adultCount"`
	ChildCount      int                `bson:"childCount"`
	HomeImageURL    string             `bson:"homeImageUrl,omitempty"`
	ImageURLs       []string           `bson:"imageUrls"`
	LastUpdated     time.Time          `bson:"lastUpdated"`
}

func toHotelDocument(h *domain.Hotel) hotelDocument {
	return hotelDocument{
		Name:            h.Name,
		HomeDescription: h.HomeDescription,
		Address:         h.Address,
		City:            h.City,
		State:           h.State,
		Country:         h.Country,
		Location:        h.Location,
		Description:     h.Description,
		Type:            nonNil(h.Type),
		StarRating:      h.StarRating,
		Facilities:      nonNil(h.Facilities),
		PricePerNight:   h.PricePerNight,
		AdultCount:      h.AdultCount,
		ChildCount:      h.ChildCount,
		HomeImageURL:    h.HomeImageURL,
		ImageURLs:       nonNil(h.ImageURLs),
		LastUpdated:     h.LastUpdated,
	}
}

func (d *hotelDocument) toDomain() domain.Hotel {
	return domain.Hotel{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		HomeDescription: d.HomeDescription,
		Address:         d.Address,
		City:            d.City,
		State:           d.State,
		Country:         d.Country,
		Location:        d.Location,
		Description:     d.Description,
		Type:            nonNil(d.Type),
		StarRating:      d.StarRating,
		Facilities:      nonNil(d.Facilities),
		PricePerNight:   d.PricePerNight,
		AdultCount:      d.AdultCount,
		ChildCount:      d.ChildCount,
		HomeImageURL:    d.HomeImageURL,
		ImageURLs:       nonNil(d.ImageURLs),
		LastUpdated:     d.LastUpdated,
	}
}

// updateDocument renders the $set stage of a partial update.
func updateDocument(u domain.HotelUpdate, lastUpdated time.Time) bson.D {
	set := bson.D{}
	str := func(key string, v *string) {
		if v != nil {
			set = append(set, bson.E{Key: key, Value: *v})
		}
	}
	str(domain.FieldName, u.Name)
	str("homeDescription", u.HomeDescription)
	str("address", u.Address)
	str(domain.FieldCity, u.City)
	str("state", u.State)
	str(domain.FieldCountry, u.Country)
	str("location", u.Location)
	str("description", u.Description)
	str("homeImageUrl", u.HomeImageURL)

	if u.Type != nil {
		set = append(set, bson.E{Key: domain.FieldType, Value: u.Type})
	}
	if u.StarRating != nil {
		set = append(set, bson.E{Key: domain.FieldStarRating, Value: *u.StarRating})
	}
	if u.Facilities != nil {
		set = append(set, bson.E{Key: domain.FieldFacilities, Value: u.Facilities})
	}
	if u.PricePerNight != nil {
		set = append(set, bson.E{Key: domain.FieldPricePerNight, Value: *u.PricePerNight})
	}
	if u.AdultCount != nil {
		set = append(set, bson.E{Key: domain.FieldAdultCount, Value: *u.AdultCount})
	}
	if u.ChildCount != nil {
		set = append(set, bson.E{Key: domain.FieldChildCount, Value: *u.ChildCount})
	}
	if u.ImageURLs != nil {
		set = append(set, bson.E{Key: "imageUrls", Value: u.ImageURLs})
	}
	set = append(set, bson.E{Key: domain.FieldLastUpdated, Value: lastUpdated})

	return bson.D{{Key: "$set", Value: set}}
}

// HotelRepository stores hotels in a collection.
type HotelRepository struct {
	coll *mongo.Collection
}

// NewHotelRepository creates a repository over coll.
func NewHotelRepository(coll *mongo.Collection) *HotelRepository {
	return &HotelRepository{coll: coll}
}

func (r *HotelRepository) Count(ctx context.Context, p domain.Predicate) (int64, error) {
	return r.coll.CountDocuments(ctx, TranslatePredicate(p))
}

func (r *HotelRepository) Find(ctx context.Context, p domain.Predicate, opts domain.FindOptions) ([]domain.Hotel, error) {
	findOpts := options.Find().SetSkip(opts.Skip)
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if sort := translateSort(opts.Sort); sort != nil {
		findOpts.SetSort(sort)
	}
	return r.find(ctx, TranslatePredicate(p), findOpts)
}

func (r *HotelRepository) List(ctx context.Context, limit int64) ([]domain.Hotel, error) {
	findOpts := options.Find()
	if limit > 0 {
		findOpts.SetLimit(limit)
	}
	return r.find(ctx, bson.D{}, findOpts)
}

func (r *HotelRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]domain.Hotel, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []hotelDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	hotels := make([]domain.Hotel, len(docs))
	for i := range docs {
		hotels[i] = docs[i].toDomain()
	}
	return hotels, nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc hotelDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: domain.FieldID, Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrHotelNotFound
	}
	if err != nil {
		return nil, err
	}

	h := doc.toDomain()
	return &h, nil
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	doc := toHotelDocument(h)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	h.ID = doc.ID.Hex()
	return nil
}

func (r *HotelRepository) Update(ctx context.Context, id string, u domain.HotelUpdate, lastUpdated time.Time) (*domain.Hotel, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc hotelDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: domain.FieldID, Value: oid}},
		updateDocument(u, lastUpdated),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrHotelNotFound
	}
	if err != nil {
		return nil, err
	}

	h := doc.toDomain()
	return &h, nil
}

func (r *HotelRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: domain.FieldID, Value: oid}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

var _ domain.HotelRepository = (*HotelRepository)(nil)
