package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
)

// Redis backs both stores with JSON values plus an id list per collection
// so List keeps insertion order.
type Redis struct {
	Client *redis.Client
}

func NewRedis(addr, password string, db int) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Redis{Client: client}
}

func (r *Redis) Ping(ctx context.Context) error {
	if _, err := r.Client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

func (r *Redis) Bookings() BookingStore {
	return &redisBookings{client: r.Client}
}

func (r *Redis) Emergencies() EmergencyStore {
	return &redisEmergencies{client: r.Client}
}

const (
	bookingKeyPrefix   = "booking:"
	bookingIDsKey      = "bookings:ids"
	emergencyKeyPrefix = "emergency:"
	emergencyIDsKey    = "emergencies:ids"
)

type redisBookings struct {
	client *redis.Client
}

func (s *redisBookings) List(ctx context.Context, f Filter) ([]models.Booking, error) {
	ids, err := s.client.LRange(ctx, bookingIDsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := []models.Booking{}
	for _, id := range ids {
		raw, err := s.client.Get(ctx, bookingKeyPrefix+id).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var b models.Booking
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			return nil, err
		}
		if matchBooking(b, f) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *redisBookings) Get(ctx context.Context, id string) (models.Booking, error) {
	raw, err := s.client.Get(ctx, bookingKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return models.Booking{}, ErrNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	var b models.Booking
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (s *redisBookings) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.ID = newID()
	b.Status = models.BookingPending
	b.CreatedAt = time.Now().UTC()
	if err := s.put(ctx, b); err != nil {
		return models.Booking{}, err
	}
	if err := s.client.RPush(ctx, bookingIDsKey, b.ID).Err(); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (s *redisBookings) UpdateStatus(ctx context.Context, id, status string) (models.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	if err := s.put(ctx, b); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (s *redisBookings) Delete(ctx context.Context, id string) (models.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.client.Del(ctx, bookingKeyPrefix+id).Err(); err != nil {
		return models.Booking{}, err
	}
	if err := s.client.LRem(ctx, bookingIDsKey, 1, id).Err(); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (s *redisBookings) put(ctx context.Context, b models.Booking) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, bookingKeyPrefix+b.ID, raw, 0).Err()
}

type redisEmergencies struct {
	client *redis.Client
}

func (s *redisEmergencies) List(ctx context.Context, f Filter) ([]models.EmergencyRequest, error) {
	ids, err := s.client.LRange(ctx, emergencyIDsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := []models.EmergencyRequest{}
	for _, id := range ids {
		raw, err := s.client.Get(ctx, emergencyKeyPrefix+id).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var e models.EmergencyRequest
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, err
		}
		if matchEmergency(e, f) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *redisEmergencies) Get(ctx context.Context, id string) (models.EmergencyRequest, error) {
	raw, err := s.client.Get(ctx, emergencyKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return models.EmergencyRequest{}, ErrNotFound
	}
	if err != nil {
		return models.EmergencyRequest{}, err
	}
	var e models.EmergencyRequest
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return models.EmergencyRequest{}, err
	}
	return e, nil
}

func (s *redisEmergencies) Create(ctx context.Context, e models.EmergencyRequest) (models.EmergencyRequest, error) {
	e.ID = newID()
	e.Status = models.EmergencyPending
	e.Priority = models.PriorityHigh
	e.AssignedTechnician = ""
	e.CreatedAt = time.Now().UTC()
	if err := s.put(ctx, e); err != nil {
		return models.EmergencyRequest{}, err
	}
	if err := s.client.RPush(ctx, emergencyIDsKey, e.ID).Err(); err != nil {
		return models.EmergencyRequest{}, err
	}
	return e, nil
}

func (s *redisEmergencies) UpdateStatus(ctx context.Context, id, status, technician string) (models.EmergencyRequest, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return models.EmergencyRequest{}, err
	}
	e.Status = status
	if technician != "" {
		e.AssignedTechnician = technician
	}
	if err := s.put(ctx, e); err != nil {
		return models.EmergencyRequest{}, err
	}
	return e, nil
}

func (s *redisEmergencies) Delete(ctx context.Context, id string) (models.EmergencyRequest, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return models.EmergencyRequest{}, err
	}
	if err := s.client.Del(ctx, emergencyKeyPrefix+id).Err(); err != nil {
		return models.EmergencyRequest{}, err
	}
	if err := s.client.LRem(ctx, emergencyIDsKey, 1, id).Err(); err != nil {
		return models.EmergencyRequest{}, err
	}
	return e, nil
}

func (s *redisEmergencies) put(ctx context.Context, e models.EmergencyRequest) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, emergencyKeyPrefix+e.ID, raw, 0).Err()
}
