package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"focusapp/internal/auth"
	"focusapp/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	sessionStore auth.SessionStoreInterface,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	timerHandler *handler.TimerHandler,
	friendHandler *handler.FriendHandler,
	leaderboardHandler *handler.LeaderboardHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/signup", authHandler.SignupForm)
	e.POST("/signup", authHandler.Signup)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)

	// Secured routes: session cookie required, absence redirects to /login.
	secured := e.Group("", sessionMiddleware(jwtService, sessionStore))

	secured.GET("/logout", authHandler.Logout)

	secured.GET("/", taskHandler.Home)
	secured.POST("/add_task", taskHandler.Add)
	secured.GET("/toggle_task/:id", taskHandler.Toggle)
	secured.GET("/delete_task/:id", taskHandler.Delete)
	secured.GET("/clear_tasks", taskHandler.Clear)

	secured.POST("/start_timer", timerHandler.Start)
	secured.POST("/end_timer/:session_id", timerHandler.End)

	secured.GET("/friends", friendHandler.Overview)
	secured.POST("/add_friend_by_code", friendHandler.AddByCode)
	secured.GET("/respond_request/:id/:action", friendHandler.Respond)
	secured.GET("/friend_tasks/:friend_id", friendHandler.FriendTasks)

	secured.GET("/leaderboard", leaderboardHandler.Top)
}

// sessionMiddleware validates the session cookie, rejects revoked tokens and
// stores the claims on the request context. Missing or invalid sessions are
// redirected to the login page rather than erroring.
func sessionMiddleware(jwtService *auth.JWTService, sessionStore auth.SessionStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + handler.SessionCookie,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			revoked, _ := sessionStore.IsSessionRevoked(c.Request().Context(), claims.ID)
			if revoked {
				return nil, echo.ErrUnauthorized
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusFound, "/login")
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
