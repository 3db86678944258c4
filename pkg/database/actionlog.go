package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const actionCollection = "mod_actions"

// maxPendingActions bounds the offline queue so a long outage cannot grow
// memory without limit. Oldest entries are dropped first.
const maxPendingActions = 500

// ActionLog writes moderation actions to the mod_actions collection.
// Writes are best effort: when the database is offline the records queue
// in memory and flush on the next successful insert.
type ActionLog struct {
	db      *Database
	pending []models.ModAction
	mu      sync.Mutex
}

var (
	actionLog     *ActionLog
	actionLogOnce sync.Once
)

// InitActionLog initializes the global action log
func InitActionLog(db *Database) *ActionLog {
	actionLogOnce.Do(func() {
		actionLog = &ActionLog{db: db}
	})
	return actionLog
}

// GetActionLog returns the global action log instance
func GetActionLog() *ActionLog {
	return actionLog
}

// Insert records a moderation action. It never fails the calling command:
// on error the record is queued and retried later.
func (a *ActionLog) Insert(action models.ModAction) {
	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.db.Connected() {
		a.enqueueLocked(action)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	col := a.db.GetCollection(actionCollection)
	if col == nil {
		a.enqueueLocked(action)
		return
	}

	if _, err := col.InsertOne(ctx, action); err != nil {
		logger.Error(fmt.Sprintf("Fallo al registrar acción '%s' en la auditoría. Encolando.", action.Type), "ActionLog")
		a.enqueueLocked(action)
		return
	}

	a.flushLocked()
}

func (a *ActionLog) enqueueLocked(action models.ModAction) {
	if len(a.pending) >= maxPendingActions {
		a.pending = a.pending[1:]
	}
	a.pending = append(a.pending, action)
	logger.Warn(fmt.Sprintf("DB offline. Acciones de moderación en cola: %d", len(a.pending)), "ActionLog")
}

// flushLocked drains the pending queue. Caller holds a.mu.
func (a *ActionLog) flushLocked() {
	if len(a.pending) == 0 {
		return
	}

	col := a.db.GetCollection(actionCollection)
	if col == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs := make([]interface{}, len(a.pending))
	for i, p := range a.pending {
		docs[i] = p
	}

	if _, err := col.InsertMany(ctx, docs); err != nil {
		logger.Error("Fallo al vaciar la cola de auditoría.", "ActionLog")
		return
	}

	logger.Success(fmt.Sprintf("Cola de auditoría vaciada (%d acciones).", len(a.pending)), "ActionLog")
	a.pending = nil
}

// PendingCount returns the number of queued records waiting for the database
func (a *ActionLog) PendingCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// Recent returns the latest actions for a guild, newest first
func (a *ActionLog) Recent(guildID string, limit int64) ([]models.ModAction, error) {
	if !a.db.Connected() {
		return nil, fmt.Errorf("database not connected")
	}

	col := a.db.GetCollection(actionCollection)
	if col == nil {
		return nil, fmt.Errorf("collection unavailable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := col.Find(ctx, bson.M{"guildId": guildID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var results []models.ModAction
	for cursor.Next(ctx) {
		var doc models.ModAction
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		results = append(results, doc)
	}

	return results, cursor.Err()
}

// RecentForUser returns the latest actions against one user in a guild
func (a *ActionLog) RecentForUser(guildID, userID string, limit int64) ([]models.ModAction, error) {
	if !a.db.Connected() {
		return nil, fmt.Errorf("database not connected")
	}

	col := a.db.GetCollection(actionCollection)
	if col == nil {
		return nil, fmt.Errorf("collection unavailable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := col.Find(ctx, bson.M{"guildId": guildID, "userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var results []models.ModAction
	for cursor.Next(ctx) {
		var doc models.ModAction
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		results = append(results, doc)
	}

	return results, cursor.Err()
}
