package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const rolesCollection = "roles"

// RoleRepository maintains the static role set. Roles are seeded once and
// never mutated at runtime.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

// Ensure upserts the named role, making seeding idempotent.
func (r *RoleRepository) Ensure(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("ensure role %q: %w", name, err)
	}
	return nil
}
