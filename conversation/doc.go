// Package conversation keeps Dify conversation ids across calls.
//
// Dify starts a new conversation for every chat message sent without a
// conversation_id and returns the new id in the reply. A Tracker stores that
// id under a caller-chosen key (a user, a chat room, an agent session) and
// sends it with the next message:
//
//	tracker := conversation.NewTracker(client.Chat(), conversation.NewMemoryStore(0))
//	resp, err := tracker.Send(ctx, "room-42", types.ChatRequest{Query: "hi", User: "u1"})
//
// RedisStore shares ids between processes:
//
//	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	store := conversation.NewRedisStore(rdb, conversation.WithTTL(24*time.Hour))
package conversation
