package handlers

import "github.com/gofiber/fiber/v2"

// PageHandler serves the static form pages. None of them carry server-side
// state; signup and signin render forms only, with no credential logic
// behind them.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{"Title": "Home"})
}

func (h *PageHandler) Signup(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{"Title": "SignIn/SignUp"})
}

func (h *PageHandler) Signin(c *fiber.Ctx) error {
	return c.Render("signin", fiber.Map{"Title": "SignIn/SignUp"})
}

func (h *PageHandler) Upload(c *fiber.Ctx) error {
	return c.Render("upload", fiber.Map{"Title": "Upload"})
}

func (h *PageHandler) UploadPaint(c *fiber.Ctx) error {
	return c.Render("upload-paint", fiber.Map{"Title": "Upload Paintings"})
}

func (h *PageHandler) UploadMusic(c *fiber.Ctx) error {
	return c.Render("upload-music", fiber.Map{"Title": "Upload Music"})
}

func (h *PageHandler) UploadDance(c *fiber.Ctx) error {
	return c.Render("upload-dance", fiber.Map{"Title": "Upload Dance Video"})
}

func (h *PageHandler) Dance(c *fiber.Ctx) error {
	return c.Redirect("/dance-videos")
}
