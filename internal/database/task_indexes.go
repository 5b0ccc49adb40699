// Package database - Index bổ sung cho nhiệm vụ (nested fields) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"task_manager/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateTaskAdditionalIndexes tạo các index bổ sung cho collection tasks (nested fields, compound).
// Gọi sau CreateIndexes cho collection tasks.
func CreateTaskAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	tasks := db.Collection(global.MongoDB_ColNames.Tasks)

	// tasks: (assignedTo.employeeId, createdAt desc) — truy vấn nhiệm vụ theo nhân viên
	if _, err := tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "assignedTo.employeeId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("task_assignee_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// tasks: (initiallyAssignedTo, createdAt desc) — truy vấn nhiệm vụ giao cho admin
	if _, err := tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "initiallyAssignedTo", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("task_initial_assignee_created").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// tasks: (createdBy.id, createdAt desc) — truy vấn nhiệm vụ theo người tạo
	if _, err := tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdBy.id", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("task_creator_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// tasks: (project, createdAt desc) — truy vấn nhiệm vụ theo dự án
	if _, err := tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "project", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("task_project_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
