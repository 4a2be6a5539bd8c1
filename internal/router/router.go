package router

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"movienuts/internal/auth"
	"movienuts/internal/config"
	apperrors "movienuts/internal/errors"
	"movienuts/internal/handler"
	"movienuts/internal/response"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	issuer *auth.TokenIssuer,
	authHandler *handler.AuthHandler,
	blogHandler *handler.BlogHandler,
	movieHandler *handler.MovieHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigins},
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public auth routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	api := e.Group("/api")

	// Public catalog and community routes
	api.GET("/movies", movieHandler.List)
	api.GET("/movies/genres", movieHandler.Genres)
	api.GET("/movies/search", movieHandler.Search)
	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.Get)
	api.GET("/blogs", blogHandler.ListRecent)
	api.GET("/blogs/user/:id", blogHandler.ListByUser)

	// Secured routes: token accepted from the Authorization header or the
	// session cookie, verified by the token issuer so expiry and signature
	// failures map to one 401 shape.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + response.TokenCookieName,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return issuer.Verify(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			mapped := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
			return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
		},
	}))

	secured.POST("/blogs", blogHandler.Create)
	secured.PUT("/users/me", userHandler.UpdateMe)
	secured.POST("/movies/import", movieHandler.Import)
}
