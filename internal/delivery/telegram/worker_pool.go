package telegram

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

// queryRequest represents one user query waiting to be processed
type queryRequest struct {
	ctx      context.Context
	userID   int64
	username string
	text     string
	chatID   int64
}

// workerPool manages parallel processing of queries
type workerPool struct {
	requestQueue chan *queryRequest
	workerCount  int
	handler      *BotHandler
	wg           sync.WaitGroup

	// Rate limiting per user
	rateLimiter   map[int64]*userRateLimit
	rateLimiterMu sync.Mutex

	closedMu sync.RWMutex
	closed   bool
}

// userRateLimit tracks rate limiting per user
type userRateLimit struct {
	lastRequest  time.Time
	requestCount int
}

const (
	maxRequestsPerSecond   = 3
	requestQueueSize       = 100
	defaultWorkerCount     = 10
	queryTimeout           = 30 * time.Second
	rateLimiterCleanupTime = 5 * time.Minute
	rateLimiterMaxIdleTime = 10 * time.Minute
)

const (
	msgTooManyRequests = "⚠️ طلبات كثيرة جداً. انتظر قليلاً من فضلك."
	msgBotBusy         = "⚠️ المساعد مشغول حالياً. حاول بعد لحظات."
	msgProcessingError = "عذراً، حدث خطأ أثناء الإجابة. حاول مرة أخرى."
)

// newWorkerPool creates a new worker pool
func newWorkerPool(handler *BotHandler, workerCount int) *workerPool {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &workerPool{
		requestQueue: make(chan *queryRequest, requestQueueSize),
		workerCount:  workerCount,
		handler:      handler,
		rateLimiter:  make(map[int64]*userRateLimit),
	}
}

// start starts all workers
func (wp *workerPool) start(ctx context.Context) {
	log.Printf("Starting %d workers for parallel query processing", wp.workerCount)

	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}

	go wp.cleanupRateLimits(ctx)
}

// worker processes queries from the queue
func (wp *workerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		case req, ok := <-wp.requestQueue:
			if !ok {
				log.Printf("Worker %d shutting down (queue closed)", id)
				return
			}
			if req == nil {
				continue
			}

			if !wp.checkRateLimit(req.userID) {
				wp.handler.sendMessage(req.chatID, msgTooManyRequests)
				continue
			}

			wp.processQueryWithTimeout(req)
		}
	}
}

// processQueryWithTimeout runs one assistant query with an edge
// timeout. Pipeline o'zi timeout qo'ymaydi; muddati tugagan kontekst
// store xatosi sifatida ko'rinadi va umumiy xato matniga aylanadi.
func (wp *workerPool) processQueryWithTimeout(req *queryRequest) {
	ctx, cancel := context.WithTimeout(req.ctx, queryTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in query processing for user %d: %v", req.userID, r)
			wp.handler.sendMessage(req.chatID, msgProcessingError)
		}
	}()

	wp.handler.sendTyping(req.chatID)

	response := wp.handler.assistant.ProcessQuery(ctx, req.text)
	wp.handler.sendMessage(req.chatID, response)

	if wp.handler.chatRepo != nil {
		message := entity.ChatMessage{
			ID:        uuid.New().String(),
			UserID:    req.userID,
			Username:  req.username,
			Text:      req.text,
			Response:  response,
			Timestamp: time.Now(),
		}
		if err := wp.handler.chatRepo.SaveMessage(ctx, message); err != nil {
			log.Printf("failed to save chat message: %v", err)
		}
	}
}

// checkRateLimit checks if user is within rate limit
func (wp *workerPool) checkRateLimit(userID int64) bool {
	wp.rateLimiterMu.Lock()
	defer wp.rateLimiterMu.Unlock()

	now := time.Now()
	limiter, exists := wp.rateLimiter[userID]
	if !exists {
		wp.rateLimiter[userID] = &userRateLimit{lastRequest: now, requestCount: 1}
		return true
	}

	if now.Sub(limiter.lastRequest) >= time.Second {
		limiter.requestCount = 1
		limiter.lastRequest = now
		return true
	}

	if limiter.requestCount >= maxRequestsPerSecond {
		log.Printf("Rate limit exceeded for user %d", userID)
		return false
	}

	limiter.requestCount++
	return true
}

// cleanupRateLimits removes idle rate limit entries
func (wp *workerPool) cleanupRateLimits(ctx context.Context) {
	ticker := time.NewTicker(rateLimiterCleanupTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			wp.rateLimiterMu.Lock()
			removed := 0
			for userID, limiter := range wp.rateLimiter {
				if now.Sub(limiter.lastRequest) > rateLimiterMaxIdleTime {
					delete(wp.rateLimiter, userID)
					removed++
				}
			}
			wp.rateLimiterMu.Unlock()
			if removed > 0 {
				log.Printf("Cleaned up %d inactive rate limiters", removed)
			}
		}
	}
}

// submit submits a query to the worker pool
func (wp *workerPool) submit(req *queryRequest) bool {
	// Shutdown bilan poyga: yopilgan kanalga yozish mumkin emas.
	wp.closedMu.RLock()
	defer wp.closedMu.RUnlock()
	if wp.closed {
		log.Printf("Worker pool is shut down, dropping request from user %d", req.userID)
		return false
	}

	select {
	case wp.requestQueue <- req:
		return true
	default:
		log.Printf("Worker pool queue is full (%d/%d), rejecting request from user %d",
			len(wp.requestQueue), requestQueueSize, req.userID)
		wp.handler.sendMessage(req.chatID, msgBotBusy)
		return false
	}
}

// shutdown gracefully shuts down the worker pool
func (wp *workerPool) shutdown() {
	wp.closedMu.Lock()
	if wp.closed {
		wp.closedMu.Unlock()
		return
	}
	wp.closed = true
	wp.closedMu.Unlock()

	log.Printf("Shutting down worker pool, %d queries in queue", len(wp.requestQueue))
	close(wp.requestQueue)
	wp.wg.Wait()
	log.Println("Worker pool shut down successfully")
}
