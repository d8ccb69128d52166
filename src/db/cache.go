package db

import (
	"log"

	"paymill-mirror/src/models"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache holds transactions read through the API. Writes to the mirror drop the
// affected entry.
var Cache *ristretto.Cache[string, *models.Transaction]

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config[string, *models.Transaction]{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func TransactionCacheKey(id string) string {
	return "transaction:" + id
}

func GetTransactionCache(cacheKey string) (*models.Transaction, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(cacheKey)
}

func SetTransactionCache(cacheKey string, value *models.Transaction) {
	if Cache == nil {
		return
	}
	Cache.Set(cacheKey, value, 1)
}

func DelTransactionCache(cacheKey string) {
	if Cache == nil {
		return
	}
	Cache.Del(cacheKey)
}
