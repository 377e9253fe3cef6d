package cache

import (
	"sync"

	"github.com/rafkix/enwis-backend/internal/models"
)

// Cache keeps published exams in memory. Exams are immutable once
// published, so entries are never invalidated.
type Cache struct {
	mu    sync.Mutex
	exams map[string]models.Exam
}

func NewCache() *Cache {
	return &Cache{
		exams: make(map[string]models.Exam),
	}
}

func (c *Cache) Exam(examID string) (models.Exam, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	exam, exists := c.exams[examID]
	return exam, exists
}

func (c *Cache) SetExam(exam models.Exam) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exams[exam.ID] = exam
}

func (c *Cache) DeleteExam(examID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.exams, examID)
}
