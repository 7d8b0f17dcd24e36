package flows

import "sync"

// PendingWork remembers, per chat, which employee the next amount message is for.
type PendingWork struct {
	mu    sync.Mutex
	chats map[int64]string
}

func NewPendingWork() *PendingWork {
	return &PendingWork{chats: make(map[int64]string)}
}

func (p *PendingWork) Set(chatID int64, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chats[chatID] = name
}

// Take returns and clears the pending employee for the chat.
func (p *PendingWork) Take(chatID int64) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	name, ok := p.chats[chatID]
	delete(p.chats, chatID)
	return name, ok
}

func (p *PendingWork) Clear(chatID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.chats, chatID)
}
