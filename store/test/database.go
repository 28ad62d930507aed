package test

import (
	"context"
	"fmt"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wellspring-health/clinic/store"
	"github.com/wellspring-health/clinic/test"
)

const (
	mongoHostEnvName = "CLINIC_TEST_MONGO_HOST"
	mongoTestHost    = "mongodb://127.0.0.1:27017"
	mongoTimeout     = time.Second * 5
)

var (
	database *mongo.Database
)

func SetupDatabase() {
	host := mongoTestHost
	if h, ok := os.LookupEnv(mongoHostEnvName); ok && h != "" {
		host = h
	}

	client, err := store.NewClient(host)
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		Skip(fmt.Sprintf("mongo is not reachable at %s: %v", host, err))
	}

	databaseName := fmt.Sprintf("clinic_test_%s_%d", test.Faker.Lorem().Word(), GinkgoParallelProcess())
	database = client.Database(databaseName)
}

func TeardownDatabase() {
	if database == nil {
		return
	}
	err := database.Drop(context.Background())
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	Expect(database.Client().Disconnect(ctx)).ToNot(HaveOccurred())
	database = nil
}

func GetTestDatabase() *mongo.Database {
	Expect(database).ToNot(BeNil())
	return database
}
