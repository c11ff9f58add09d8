package routes

import (
	"github.com/fathima-sithara/media-gallery/internal/handlers"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, pages *handlers.PageHandler, paintings *handlers.PaintingHandler, music *handlers.MusicHandler, dance *handlers.DanceHandler) {
	app.Get("/", pages.Home)
	app.Get("/signup", pages.Signup)
	app.Get("/signin", pages.Signin)
	app.Get("/dance", pages.Dance)

	app.Get("/upload", pages.Upload)
	app.Get("/upload-paint", pages.UploadPaint)
	app.Get("/upload-music", pages.UploadMusic)
	app.Get("/upload-dance", pages.UploadDance)

	app.Get("/paintings", paintings.List)
	app.Post("/paintings", paintings.Create)
	app.Get("/paintings/:id", paintings.Detail)
	app.Delete("/paintings/:id", paintings.Delete)

	app.Get("/music", music.List)
	app.Post("/music", music.Create)
	app.Get("/music/:id", music.Detail)
	app.Delete("/music/:id", music.Delete)

	app.Get("/dance-videos", dance.List)
	app.Post("/dance-videos", dance.Create)
	app.Get("/dance-videos/:id", dance.Detail)
	app.Delete("/dance-videos/:id", dance.Delete)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
}
