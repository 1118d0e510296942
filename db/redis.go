// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/clinova/api/logging"
	"github.com/clinova/api/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if err := setEncryptionKey(viper.GetString("redis.encryptionKey")); err != nil {
		return err
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

// setEncryptionKey validates the AES-256 key guarding cached values at rest.
// Patient records and schedules never reach redis in plaintext.
func setEncryptionKey(key string) error {
	if len(key) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}
	encryptionKey = []byte(key)
	return nil
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func CacheSchedule(ctx context.Context, schedule *model.Schedule) error {
	scheduleJSON, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}

	encrypted, err := encrypt(scheduleJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt schedule: %w", err)
	}

	key := fmt.Sprintf("schedule:%s", schedule.DoctorID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encrypted), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache schedule: %w", err)
	}

	logger.Debug("Schedule cached successfully", zap.String("doctorID", schedule.DoctorID))
	return nil
}

func GetCachedSchedule(ctx context.Context, doctorID string) (*model.Schedule, error) {
	key := fmt.Sprintf("schedule:%s", doctorID)
	encoded, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Schedule not found in cache", zap.String("doctorID", doctorID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get schedule from cache: %w", err)
	}

	encrypted, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached schedule: %w", err)
	}
	scheduleJSON, err := decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt cached schedule: %w", err)
	}

	var schedule model.Schedule
	err = json.Unmarshal(scheduleJSON, &schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedule: %w", err)
	}

	logger.Debug("Schedule retrieved from cache", zap.String("doctorID", doctorID))
	return &schedule, nil
}

func DeleteCachedSchedule(ctx context.Context, doctorID string) error {
	key := fmt.Sprintf("schedule:%s", doctorID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete schedule from cache: %w", err)
	}
	logger.Debug("Schedule deleted from cache", zap.String("doctorID", doctorID))
	return nil
}

func CachePatient(ctx context.Context, patient *model.Patient) error {
	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return fmt.Errorf("failed to marshal patient: %w", err)
	}

	encrypted, err := encrypt(patientJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt patient: %w", err)
	}

	key := fmt.Sprintf("patient:%s", patient.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encrypted), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache patient: %w", err)
	}

	logger.Debug("Patient cached successfully", zap.String("patientID", patient.ID))
	return nil
}

func GetCachedPatient(ctx context.Context, patientID string) (*model.Patient, error) {
	key := fmt.Sprintf("patient:%s", patientID)
	encoded, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Patient not found in cache", zap.String("patientID", patientID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get patient from cache: %w", err)
	}

	encrypted, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached patient: %w", err)
	}
	patientJSON, err := decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt cached patient: %w", err)
	}

	var patient model.Patient
	err = json.Unmarshal(patientJSON, &patient)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal patient: %w", err)
	}

	logger.Debug("Patient retrieved from cache", zap.String("patientID", patientID))
	return &patient, nil
}

func DeleteCachedPatient(ctx context.Context, patientID string) error {
	key := fmt.Sprintf("patient:%s", patientID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete patient from cache: %w", err)
	}
	logger.Debug("Patient deleted from cache", zap.String("patientID", patientID))
	return nil
}
