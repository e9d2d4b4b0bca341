// Package mongostore implements store.Store on a MongoDB collection set.
package mongostore

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booking_system/internal/domain"
	"booking_system/internal/phone"
	"booking_system/internal/store"
)

// Store is the document adapter. Collection names match the legacy
// deployment exactly: users, admins, bookings.
type Store struct {
	client   *mongo.Client
	users    *mongo.Collection
	admins   *mongo.Collection
	bookings *mongo.Collection
}

// Open connects to MongoDB, verifies the connection and ensures the unique
// index on users.phone that registration relies on.
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	db := client.Database(dbName)
	s := &Store{
		client:   client,
		users:    db.Collection("users"),
		admins:   db.Collection("admins"),
		bookings: db.Collection("bookings"),
	}
	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// userDoc mirrors the legacy schema. Phone is untyped because existing
// documents hold it as either a string or a number.
type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FullName  string             `bson:"full_name"`
	Phone     any                `bson:"phone"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Address   string             `bson:"address"`
	CreatedAt time.Time          `bson:"created_at"`
}

type adminDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password any                `bson:"password"` // Hash, plaintext or number
	FullName string             `bson:"full_name"`
	Role     string             `bson:"role"`
}

// bookingDoc mirrors the legacy schema. Phone, BookingDate and Postcode are
// untyped because existing documents hold them as strings, numbers or BSON
// dates interchangeably.
type bookingDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName  string             `bson:"customer_name"`
	Phone         any                `bson:"phone"`
	ServiceType   string             `bson:"service_type"`
	BookingDate   any                `bson:"booking_date"`
	BookingTime   string             `bson:"booking_time"`
	SubDistrict   string             `bson:"sub_district"`
	District      string             `bson:"district"`
	Province      string             `bson:"province"`
	Postcode      any                `bson:"postcode"`
	AddressDetail string             `bson:"address_detail"`
	Notes         string             `bson:"notes"`
	Status        string             `bson:"status"`
	ImageURL      *string            `bson:"image_url"`
	CreatedAt     time.Time          `bson:"created_at"`
}

// textField renders an untyped legacy field as text. BSON dates become
// RFC3339, the form Mongoose serialized them in; everything else is its
// plain string form.
func textField(v any) string {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	default:
		return cast.ToString(t)
	}
}

// phoneField renders a phone value the way the legacy writers did: numbers
// stay numbers, everything else stays a string.
func phoneField(p phone.Value) any {
	if p.Numeric() {
		if n, ok := p.Number(); ok {
			return n
		}
	}
	return p.String()
}

// phoneFilter matches documents whose phone equals the value under either
// representation, the $or the legacy queries used.
func phoneFilter(p phone.Value) bson.M {
	or := bson.A{bson.M{"phone": p.String()}}
	if n, ok := p.Number(); ok {
		or = append(or, bson.M{"phone": n})
	}
	return bson.M{"$or": or}
}

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	doc := userDoc{
		FullName:  u.FullName,
		Phone:     phoneField(u.Phone),
		Email:     u.Email,
		Password:  u.Password,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	res, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicate
		}
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID).Hex()
	u.CreatedAt = doc.CreatedAt
	return nil
}

func (s *Store) FindUserByPhone(ctx context.Context, p phone.Value) (*domain.User, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, phoneFilter(p)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u := domain.User{
		ID:        doc.ID.Hex(),
		FullName:  doc.FullName,
		Phone:     phone.Parse(doc.Phone),
		Email:     doc.Email,
		Password:  doc.Password,
		Address:   doc.Address,
		CreatedAt: doc.CreatedAt,
	}
	return &u, nil
}

func (s *Store) CreateAdmin(ctx context.Context, a *domain.Admin) error {
	doc := adminDoc{
		Username: a.Username,
		Password: a.Password,
		FullName: a.FullName,
		Role:     a.Role,
	}
	res, err := s.admins.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (s *Store) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var doc adminDoc
	err := s.admins.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a := domain.Admin{
		ID:       doc.ID.Hex(),
		Username: doc.Username,
		Password: doc.Password,
		FullName: doc.FullName,
		Role:     doc.Role,
	}
	return &a, nil
}

func (s *Store) CreateBooking(ctx context.Context, b *domain.Booking) (string, error) {
	doc := bookingDoc{
		CustomerName:  b.CustomerName,
		Phone:         phoneField(b.Phone),
		ServiceType:   b.ServiceType,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		SubDistrict:   b.SubDistrict,
		District:      b.District,
		Province:      b.Province,
		Postcode:      b.Postcode,
		AddressDetail: b.AddressDetail,
		Notes:         b.Notes,
		Status:        b.Status,
		ImageURL:      b.ImageURL,
		CreatedAt:     b.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	res, err := s.bookings.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	b.ID = res.InsertedID.(primitive.ObjectID).Hex()
	b.CreatedAt = doc.CreatedAt
	return b.ID, nil
}

func (s *Store) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.findBookings(ctx, bson.M{}, opts)
}

func (s *Store) ListBookingsByPhone(ctx context.Context, p phone.Value) ([]domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.findBookings(ctx, phoneFilter(p), opts)
}

func (s *Store) findBookings(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Booking, error) {
	cur, err := s.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Booking
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, toBooking(doc))
	}
	return out, cur.Err()
}

func toBooking(doc bookingDoc) domain.Booking {
	return domain.Booking{
		ID:            doc.ID.Hex(),
		CustomerName:  doc.CustomerName,
		Phone:         phone.Parse(doc.Phone),
		ServiceType:   doc.ServiceType,
		BookingDate:   textField(doc.BookingDate), // Never reformatted by this backend
		BookingTime:   doc.BookingTime,
		SubDistrict:   doc.SubDistrict,
		District:      doc.District,
		Province:      doc.Province,
		Postcode:      textField(doc.Postcode),
		AddressDetail: doc.AddressDetail,
		Notes:         doc.Notes,
		Status:        doc.Status,
		ImageURL:      doc.ImageURL,
		CreatedAt:     doc.CreatedAt,
	}
}

// UpdateBooking overwrites the full mutable field set. An id that is not a
// valid ObjectID, or one that matches no document, still reports success;
// existing clients rely on that leniency.
func (s *Store) UpdateBooking(ctx context.Context, id string, upd domain.BookingUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	set := bson.M{
		"customer_name":  upd.CustomerName,
		"phone":          phoneField(upd.Phone),
		"service_type":   upd.ServiceType,
		"booking_date":   upd.BookingDate,
		"booking_time":   upd.BookingTime,
		"sub_district":   upd.SubDistrict,
		"district":       upd.District,
		"province":       upd.Province,
		"postcode":       upd.Postcode,
		"address_detail": upd.AddressDetail,
		"notes":          upd.Notes,
		"status":         upd.Status,
	}
	_, err = s.bookings.UpdateByID(ctx, oid, bson.M{"$set": set})
	return err
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.bookings.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": status}})
	return err
}

func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.bookings.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
