package main

import (
	"context"
	"database/sql"
	"flag"
	"io/ioutil"
	"log"
	"net/http"
	"time"

	"photogram/pkg/config"
	"photogram/pkg/follow"
	"photogram/pkg/handlers"
	"photogram/pkg/images"
	"photogram/pkg/middleware"
	"photogram/pkg/posts"
	"photogram/pkg/session"
	"photogram/pkg/tags"
	"photogram/pkg/user"
	"photogram/pkg/votes"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var createSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		email VARCHAR(254) NOT NULL,
		password VARBINARY(100) NOT NULL,
		first_name VARCHAR(30) NOT NULL DEFAULT '',
		last_name VARCHAR(150) NOT NULL DEFAULT '',
		bio VARCHAR(512) NOT NULL DEFAULT '',
		avatar VARCHAR(255) NOT NULL DEFAULT '',
		follow_count int(11) NOT NULL DEFAULT 0,
		followed_count int(11) NOT NULL DEFAULT 0,
		PRIMARY KEY (id),
		UNIQUE KEY email (email)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS posts (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		user_id int(11) unsigned NOT NULL,
		created DATETIME NOT NULL,
		PRIMARY KEY (id),
		KEY user_id (user_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS images (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		post_id int(11) unsigned NOT NULL,
		file VARCHAR(255) NOT NULL,
		PRIMARY KEY (id),
		KEY post_id (post_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS tags (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		name VARCHAR(32) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY name (name)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS post_tags (
		post_id int(11) unsigned NOT NULL,
		tag_id int(11) unsigned NOT NULL,
		PRIMARY KEY (post_id, tag_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS votes (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		user_id int(11) unsigned NOT NULL,
		post_id int(11) unsigned NOT NULL,
		vote TINYINT(1) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY user_post (user_id, post_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS follows (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		user_id int(11) unsigned NOT NULL,
		followed_id int(11) unsigned NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY user_followed (user_id, followed_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,
}

func main() {
	var configDir string
	flag.StringVar(&configDir, "config", "", "directory with photogram.yaml")
	flag.Parse()

	cfg, err := config.Read(configDir)
	if err != nil {
		panic(err)
	}

	app := &Application{Config: cfg}
	app.Run()
}

type Application struct {
	Config *config.Config

	HTTPServer *http.Server
}

func (a *Application) Run() {
	r := mux.NewRouter()

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.Config.RedisAddr,
		Password: a.Config.RedisPassword,
		DB:       a.Config.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		panic(err.Error())
	}

	privateKeyBytes, err := ioutil.ReadFile(a.Config.PrivateKeyFile)
	if err != nil {
		panic(err)
	}

	publicKeyBytes, err := ioutil.ReadFile(a.Config.PublicKeyFile)
	if err != nil {
		panic(err)
	}

	smJWT, err := session.NewSessionsJWTManager(privateKeyBytes, publicKeyBytes)
	if err != nil {
		panic(err)
	}

	sm := session.NewSessionManagerRedis(rdb, smJWT)
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync() // flushes buffer, if any
	logger := zapLogger.Sugar()

	db, err := sql.Open("mysql", a.Config.MySQLDSN)
	if err != nil {
		panic(err.Error())
	}

	defer db.Close()
	err = db.Ping()
	if err != nil {
		panic(err)
	}

	for _, stmt := range createSchema {
		_, err = db.Exec(stmt)
		if err != nil {
			panic(err)
		}
	}

	userRepo := user.NewUserRepoSQL(db)
	postsRepo := posts.NewPostsRepoSQL(db)
	tagsRepo := tags.NewTagsRepoSQL(db)
	votesRepo := votes.NewVotesRepoSQL(db)
	followRepo := follow.NewFollowRepoSQL(db)
	imagesRepo := images.NewImagesRepoSQL(db)
	storage := images.NewDiskStorage(a.Config.MediaDir)

	userHandler := &handlers.UserHandler{
		Repo:   userRepo,
		Logger: logger,
	}

	postsHandler := &handlers.PostHandler{
		PostsRepo:  postsRepo,
		UsersRepo:  userRepo,
		TagsRepo:   tagsRepo,
		VotesRepo:  votesRepo,
		ImagesRepo: imagesRepo,
		Storage:    storage,
		Logger:     logger,
	}

	tagsHandler := &handlers.TagHandler{
		TagsRepo:   tagsRepo,
		PostsRepo:  postsRepo,
		UsersRepo:  userRepo,
		VotesRepo:  votesRepo,
		ImagesRepo: imagesRepo,
		Logger:     logger,
	}

	followHandler := &handlers.FollowHandler{
		FollowRepo: followRepo,
		UsersRepo:  userRepo,
		Logger:     logger,
	}

	api := r.PathPrefix("/api/").Subrouter()

	api.HandleFunc("/posts/", postsHandler.Feed).Methods(http.MethodGet)
	api.HandleFunc("/posts", postsHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/post/{id}", postsHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/post/{id}", postsHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/user/{user_id}/posts", postsHandler.GetByUser).Methods(http.MethodGet)

	api.HandleFunc("/post/{post_id}/like", postsHandler.Like).Methods(http.MethodGet)
	api.HandleFunc("/post/{post_id}/dislike", postsHandler.Dislike).Methods(http.MethodGet)
	api.HandleFunc("/post/{post_id}/tag", tagsHandler.Add).Methods(http.MethodPost)

	api.HandleFunc("/profile", userHandler.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/profile", userHandler.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/user/{user_id}", userHandler.GetUser).Methods(http.MethodGet)

	api.HandleFunc("/user/{user_id}/subscribe", followHandler.Subscribe).Methods(http.MethodGet)
	api.HandleFunc("/user/{user_id}/unsubscribe", followHandler.Unsubscribe).Methods(http.MethodGet)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteResponse(w, "not found", http.StatusNotFound)
	})

	r.PathPrefix("/media/").Handler(http.StripPrefix("/media/", http.FileServer(http.Dir(a.Config.MediaDir))))

	mux := middleware.Auth(logger, sm, r)
	mux = middleware.Log(logger, mux)
	mux = middleware.Recover(logger, mux)

	srv := &http.Server{
		Handler:      mux,
		Addr:         a.Config.ServerAddr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	a.HTTPServer = srv

	logger.Infof("Started server at %s", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}
