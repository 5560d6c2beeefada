package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// setupMongoContainer starts a disposable MongoDB container and returns a
// handle to a fresh test database.
func setupMongoContainer(t *testing.T) (*mongo.Database, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "27017")

	uri := fmt.Sprintf("mongodb://%s:%d", host, port.Int())

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err = client.Ping(ctx, readpref.Primary())
		cancel()
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	db := client.Database("testdb")

	teardown := func() {
		client.Disconnect(context.Background())
		container.Terminate(context.Background())
	}

	return db, teardown
}
