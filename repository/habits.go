package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HabitsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves the MongoDB collection for habits
func GetHabitsRepo(client *mongo.Client) *HabitsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("HABITS_COLLECTION")
	return &HabitsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Inserts a new habit document
func (r *HabitsRepo) CreateHabit(ctx context.Context, habit *model.Habit) error {
	timer := utils.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	if habit.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, habit)
	if err != nil {
		utils.TrackError("database", "habit_creation_failed")
		return err
	}

	utils.TrackHabitOperation("create")
	return nil
}

// Retrieves all habits for a user, oldest first
func (r *HabitsRepo) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []*model.Habit
	if err = cursor.All(ctx, &habits); err != nil {
		utils.TrackError("database", "habit_decode_failed")
		return nil, err
	}
	return habits, nil
}

// Retrieves a single habit scoped to its owner; nil when absent
func (r *HabitsRepo) GetHabitByID(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&habit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	return &habit, nil
}

// Replaces the full history map and completion total in one update. The
// whole map is written so a toggle is one atomic document write.
func (r *HabitsRepo) UpdateHistory(ctx context.Context, habitID, userID string, history map[string]model.CompletionStatus, totalCompletions int) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}
	update := bson.M{
		"$set": bson.M{
			"history":           history,
			"total_completions": totalCompletions,
			"updated_at":        time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}

	utils.TrackHabitOperation("toggle")
	return nil
}

// Removes a habit and, with it, its embedded history
func (r *HabitsRepo) DeleteHabit(ctx context.Context, habitID, userID string) error {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "habit_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}

	utils.TrackHabitOperation("delete")
	return nil
}

// Removes every habit a user owns; used when the account is deleted
func (r *HabitsRepo) DeleteUserHabits(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "habit_deletion_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

// Counts a user's habits for display in the UI
func (r *HabitsRepo) CountUserHabits(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
