package routes

import (
	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/api/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func StatusRouter(app fiber.Router, rdb *redis.Client) {
	app.Get("/status", handlers.GetRDBStatus(rdb))
}
