package main

import (
	"log"
	"strings"
	"time"

	"inkwell/auth"
	"inkwell/config"
	"inkwell/db"
	"inkwell/models"
	"inkwell/storage"
	"inkwell/utils"
	"inkwell/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(web.Recovery))
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that
	// Custom Auth Router
	authRouter := &auth.Router{Base: router}

	// The main feed is the only cached page
	pageCache := utils.NewPageCache(time.Duration(config.PAGE_CACHE_SECONDS) * time.Second)
	router.GET("/",
		(&utils.CacheRouter{CacheTime: config.PAGE_CACHE_SECONDS}).Handler(),
		pageCache.Handler(),
		web.Index)

	// Login / signup
	router.GET("/auth/login/", web.Login)
	router.POST("/auth/login/", web.Login)
	router.POST("/auth/logout/", web.Logout)
	router.GET("/auth/signup/", web.Signup)
	router.POST("/auth/signup/", web.Signup)

	// Posts
	authRouter.GET("/new/", web.PostNew)
	authRouter.POST("/new/", web.PostNew)
	router.GET("/group/:slug/", web.GroupFeed)
	authRouter.GET("/follow/", web.FollowFeed)

	// Media
	router.GET("/media/*path", web.MediaFetch)

	// Profile routes, matched after all static ones
	router.GET("/:username/", web.Profile)
	router.GET("/:username/:post_id/", web.PostDetail)
	authRouter.GET("/:username/:post_id/edit/", web.PostEdit)
	authRouter.POST("/:username/:post_id/edit/", web.PostEdit)
	authRouter.POST("/:username/:post_id/comment/", web.AddComment)
	authRouter.GET("/:username/follow/", web.FollowAuthor)
	authRouter.GET("/:username/unfollow/", web.UnfollowAuthor)

	router.NoRoute(web.PageNotFound)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
