// Package mongodb provides the durable Store implementation backed by
// MongoDB. Record collections stay embedded in one document per user so the
// observable semantics match the in-memory backend exactly.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/666-PLAYER-666/hotel-banya/database"
	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

const blockedDocID = "blocked"

type userRecord struct {
	Phone     string           `bson:"phone"`
	FirstSeen time.Time        `bson:"firstSeen"`
	Bookings  []models.Booking `bson:"bookings"`
	Orders    []models.Order   `bson:"orders"`
}

type blockedDoc struct {
	ID    string               `bson:"_id"`
	Slots []models.BlockedSlot `bson:"slots"`
}

type serviceDoc struct {
	Name    string         `bson:"_id"`
	Service models.Service `bson:"service"`
}

// Store implements repository.Store on top of MongoDB.
type Store struct {
	records  *mongo.Collection
	blocked  *mongo.Collection
	reviews  *mongo.Collection
	services *mongo.Collection
}

// NewStore returns a MongoDB-backed store and seeds the service catalog
// with defaults for entries that do not exist yet.
func NewStore() (*Store, error) {
	db := database.MongoClient.Database("hotelbanya")
	s := &Store{
		records:  db.Collection("records"),
		blocked:  db.Collection("blocked"),
		reviews:  db.Collection("reviews"),
		services: db.Collection("services"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for name, svc := range models.DefaultServices() {
		_, err := s.services.UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{"service": svc}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed service catalog: %w", err)
		}
	}
	return s, nil
}

func (s *Store) EnsureUser(ctx context.Context, phone string) error {
	_, err := s.records.UpdateOne(ctx,
		bson.M{"phone": phone},
		bson.M{"$setOnInsert": bson.M{
			"phone":     phone,
			"firstSeen": time.Now(),
			"bookings":  []models.Booking{},
			"orders":    []models.Order{},
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *Store) allRecords(ctx context.Context) ([]userRecord, error) {
	cursor, err := s.records.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"firstSeen": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []userRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) recordFor(ctx context.Context, phone string) (userRecord, error) {
	var rec userRecord
	err := s.records.FindOne(ctx, bson.M{"phone": phone}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return userRecord{Phone: phone}, nil
	}
	return rec, err
}

func (s *Store) Users(ctx context.Context) ([]string, error) {
	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	phones := make([]string, len(records))
	for i, rec := range records {
		phones[i] = rec.Phone
	}
	return phones, nil
}

func (s *Store) BookingsFor(ctx context.Context, phone string) ([]models.Booking, error) {
	rec, err := s.recordFor(ctx, phone)
	if err != nil {
		return nil, err
	}
	if rec.Bookings == nil {
		return []models.Booking{}, nil
	}
	return rec.Bookings, nil
}

func (s *Store) AllBookings(ctx context.Context) ([]models.Booking, error) {
	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Booking{}
	for _, rec := range records {
		out = append(out, rec.Bookings...)
	}
	return out, nil
}

func (s *Store) AddBooking(ctx context.Context, phone string, b models.Booking) error {
	_, err := s.records.UpdateOne(ctx,
		bson.M{"phone": phone},
		bson.M{
			"$push":        bson.M{"bookings": b},
			"$setOnInsert": bson.M{"firstSeen": time.Now(), "orders": []models.Order{}},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *Store) MarkBookingPaid(ctx context.Context, phone string, index int) (models.Booking, error) {
	rec, err := s.recordFor(ctx, phone)
	if err != nil {
		return models.Booking{}, err
	}
	if index < 0 || index >= len(rec.Bookings) {
		return models.Booking{}, utils.ErrBookingNotFound
	}
	field := fmt.Sprintf("bookings.%d.isPaid", index)
	if _, err := s.records.UpdateOne(ctx, bson.M{"phone": phone}, bson.M{"$set": bson.M{field: true}}); err != nil {
		return models.Booking{}, err
	}
	rec.Bookings[index].IsPaid = true
	return rec.Bookings[index], nil
}

func (s *Store) ReplaceBooking(ctx context.Context, owner, date, service string, updated models.Booking) error {
	rec, err := s.recordFor(ctx, owner)
	if err != nil {
		return err
	}
	for i, b := range rec.Bookings {
		if b.Date == date && b.Service == service {
			field := fmt.Sprintf("bookings.%d", i)
			_, err := s.records.UpdateOne(ctx, bson.M{"phone": owner}, bson.M{"$set": bson.M{field: updated}})
			return err
		}
	}
	return utils.ErrBookingNotFound
}

func (s *Store) RemoveBookings(ctx context.Context, owner, date, service string) error {
	_, err := s.records.UpdateOne(ctx,
		bson.M{"phone": owner},
		bson.M{"$pull": bson.M{"bookings": bson.M{"date": date, "service": service}}},
	)
	return err
}

func (s *Store) OrdersFor(ctx context.Context, phone string) ([]models.Order, error) {
	rec, err := s.recordFor(ctx, phone)
	if err != nil {
		return nil, err
	}
	if rec.Orders == nil {
		return []models.Order{}, nil
	}
	return rec.Orders, nil
}

func (s *Store) AllOrders(ctx context.Context) ([]models.Order, error) {
	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Order{}
	for _, rec := range records {
		out = append(out, rec.Orders...)
	}
	return out, nil
}

func (s *Store) AddOrder(ctx context.Context, phone string, o models.Order) error {
	_, err := s.records.UpdateOne(ctx,
		bson.M{"phone": phone},
		bson.M{
			"$push":        bson.M{"orders": o},
			"$setOnInsert": bson.M{"firstSeen": time.Now(), "bookings": []models.Booking{}},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *Store) SetOrder(ctx context.Context, phone string, index int, o models.Order) error {
	rec, err := s.recordFor(ctx, phone)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(rec.Orders) {
		return utils.ErrOrderNotFound
	}
	field := fmt.Sprintf("orders.%d", index)
	_, err = s.records.UpdateOne(ctx, bson.M{"phone": phone}, bson.M{"$set": bson.M{field: o}})
	return err
}

func (s *Store) ReplaceOrder(ctx context.Context, owner, orderTime, totalCost string, o models.Order) error {
	rec, err := s.recordFor(ctx, owner)
	if err != nil {
		return err
	}
	for i, existing := range rec.Orders {
		if existing.OrderTime == orderTime && existing.TotalCost == totalCost {
			field := fmt.Sprintf("orders.%d", i)
			_, err := s.records.UpdateOne(ctx, bson.M{"phone": owner}, bson.M{"$set": bson.M{field: o}})
			return err
		}
	}
	return utils.ErrOrderNotFound
}

func (s *Store) blockedSlots(ctx context.Context) ([]models.BlockedSlot, error) {
	var doc blockedDoc
	err := s.blocked.FindOne(ctx, bson.M{"_id": blockedDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []models.BlockedSlot{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Slots == nil {
		doc.Slots = []models.BlockedSlot{}
	}
	return doc.Slots, nil
}

func (s *Store) BlockedSlots(ctx context.Context) ([]models.BlockedSlot, error) {
	return s.blockedSlots(ctx)
}

func (s *Store) IsBlocked(ctx context.Context, service, date string) (bool, error) {
	slots, err := s.blockedSlots(ctx)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Service == service && slot.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) AddBlockedSlot(ctx context.Context, slot models.BlockedSlot) error {
	slots, err := s.blockedSlots(ctx)
	if err != nil {
		return err
	}
	for _, existing := range slots {
		if existing.Service == slot.Service && existing.Date == slot.Date {
			return utils.ErrDateBlocked
		}
	}
	_, err = s.blocked.UpdateOne(ctx,
		bson.M{"_id": blockedDocID},
		bson.M{"$push": bson.M{"slots": slot}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *Store) RemoveBlockedSlot(ctx context.Context, index int) error {
	slots, err := s.blockedSlots(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(slots) {
		return utils.ErrBlockNotFound
	}
	slots = append(slots[:index], slots[index+1:]...)
	_, err = s.blocked.UpdateOne(ctx,
		bson.M{"_id": blockedDocID},
		bson.M{"$set": bson.M{"slots": slots}},
	)
	return err
}

func (s *Store) Reviews(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.reviews.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Store) AddReview(ctx context.Context, r models.Review) (models.Review, error) {
	count, err := s.reviews.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.Review{}, err
	}
	r.ID = int(count) + 1
	if _, err := s.reviews.InsertOne(ctx, r); err != nil {
		return models.Review{}, err
	}
	return r, nil
}

func (s *Store) Services(ctx context.Context) (map[string]models.Service, error) {
	cursor, err := s.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []serviceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make(map[string]models.Service, len(docs))
	for _, doc := range docs {
		out[doc.Name] = doc.Service
	}
	return out, nil
}

func (s *Store) GetService(ctx context.Context, name string) (models.Service, error) {
	var doc serviceDoc
	err := s.services.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Service{}, utils.ErrServiceNotFound
	}
	if err != nil {
		return models.Service{}, err
	}
	return doc.Service, nil
}

func (s *Store) SetService(ctx context.Context, name string, svc models.Service) error {
	res, err := s.services.ReplaceOne(ctx, bson.M{"_id": name}, serviceDoc{Name: name, Service: svc})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrServiceNotFound
	}
	return nil
}
