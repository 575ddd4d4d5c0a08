// Command ejaan-server provides an HTTP REST API for text checking.
//
// Usage:
//
//	ejaan-server -p 8080 -lexicon /data/kbbi.txt
//	ejaan-server -p 8080 -lexicon https://example.org/kbbi.txt
//	REDIS_ADDR=localhost:6379 ejaan-server -p 8080 -lexicon /data/kbbi.txt
//
// The word list loads in the background; requests arriving before the
// load completes are answered with dictionary lookups disabled.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/ejaan-id/ejaan/ejaan"
	"github.com/ejaan-id/ejaan/internal/customdict"
)

func main() {
	port   := flag.String("p", "8080", "port to listen on")
	lexSrc := flag.String("lexicon", envOr("LEXICON_SRC", ""), "word-list file path or URL")
	flag.Parse()

	var custom *customdict.CustomDict
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		})
		custom = customdict.New(client)
		log.Printf("   custom dict : redis (%s)", addr)
	}

	s := ejaan.NewServer(custom)

	if *lexSrc != "" {
		go s.LoadLexicon(context.Background(), *lexSrc)
	} else {
		log.Print("no -lexicon given, dictionary lookups disabled")
	}

	addr := fmt.Sprintf(":%s", *port)
	log.Printf("ejaan server listening on http://localhost:%s", *port)
	log.Printf("   POST http://localhost:%s/v1/check", *port)
	log.Printf("   GET  http://localhost:%s/health", *port)
	log.Printf("   GET  http://localhost:%s/       (Redoc UI)", *port)
	log.Fatal(http.ListenAndServe(addr, s.Routes()))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
