package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DATABASE = "exploreDB"

func GetClient(host, port, username, password string) (*mongo.Client, error) {
	var uri string
	if username != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s/", username, password, host, port)
	} else {
		uri = fmt.Sprintf("mongodb://%s:%s/", host, port)
	}
	optionsClient := options.Client().ApplyURI(uri)
	return mongo.Connect(context.TODO(), optionsClient)
}
