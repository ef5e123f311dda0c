package socket

// Broadcaster provides high-level methods for broadcasting mutation events.
// Clients re-fetch the affected view when they receive one.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// ============================================
// Project Broadcasting
// ============================================

func (b *Broadcaster) ProjectCreated(projectID string) {
	b.hub.Broadcast(MessageProjectCreated, map[string]interface{}{
		"projectId": projectID,
	})
}

func (b *Broadcaster) ProjectUpdated(projectID string) {
	b.hub.Broadcast(MessageProjectUpdated, map[string]interface{}{
		"projectId": projectID,
	})
}

func (b *Broadcaster) ProjectDeleted(projectID string) {
	b.hub.Broadcast(MessageProjectDeleted, map[string]interface{}{
		"projectId": projectID,
	})
}

// ============================================
// Resource Requirement Broadcasting
// ============================================

func (b *Broadcaster) ResourceAdded(projectID, resourceID string) {
	b.hub.Broadcast(MessageResourceAdded, map[string]interface{}{
		"projectId":  projectID,
		"resourceId": resourceID,
	})
}

func (b *Broadcaster) ResourceRemoved(resourceID string) {
	b.hub.Broadcast(MessageResourceRemoved, map[string]interface{}{
		"resourceId": resourceID,
	})
}
