package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"backend/internal/app/apiclient"
	"backend/internal/app/config"
	"backend/internal/app/redis"

	"github.com/joho/godotenv"
)

// consolectl — консольная утилита поверх клиентского слоя данных:
//
//	consolectl -base http://localhost:5000 partners list
//	consolectl clients get 3
//	consolectl licenses delete 7
//
// При заданном REDIS_HOST кэш чтений разделяется через Redis
func main() {
	baseURL := flag.String("base", "http://localhost:5000", "адрес API консоли")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
	}

	resource, action := args[0], args[1]
	var id uint
	if len(args) > 2 {
		parsed, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			log.Fatalf("invalid id %q", args[2])
		}
		id = uint(parsed)
	}

	_ = godotenv.Load()
	ctx := context.Background()

	var opts []apiclient.Option
	if host := os.Getenv("REDIS_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("REDIS_PORT"))
		rdb, err := redis.New(ctx, config.RedisConfig{
			Host:        host,
			Port:        port,
			User:        os.Getenv("REDIS_USER"),
			Password:    os.Getenv("REDIS_PASSWORD"),
			DialTimeout: 10 * time.Second,
			ReadTimeout: 10 * time.Second,
		})
		if err != nil {
			log.Printf("redis unavailable, falling back to in-memory cache: %v", err)
		} else {
			defer rdb.Close()
			opts = append(opts, apiclient.WithCache(apiclient.NewRedisCache(rdb, "console:")))
		}
	}

	client := apiclient.New(*baseURL, opts...)

	result, err := run(ctx, client, resource, action, id)
	if err != nil {
		log.Fatal(err)
	}
	if result != nil {
		printJSON(result)
	}
}

func run(ctx context.Context, client *apiclient.Client, resource, action string, id uint) (interface{}, error) {
	switch resource {
	case "partners":
		switch action {
		case "list":
			return client.Partners(ctx)
		case "get":
			return client.Partner(ctx, id)
		case "delete":
			return nil, client.DeletePartner(ctx, id)
		}
	case "clients":
		switch action {
		case "list":
			return client.Clients(ctx)
		case "get":
			return client.ClientByID(ctx, id)
		case "delete":
			return nil, client.DeleteClient(ctx, id)
		}
	case "licenses":
		switch action {
		case "list":
			return client.Licenses(ctx)
		case "get":
			return client.License(ctx, id)
		case "delete":
			return nil, client.DeleteLicense(ctx, id)
		}
	case "devices":
		switch action {
		case "list":
			return client.Devices(ctx)
		case "get":
			return client.Device(ctx, id)
		case "delete":
			return nil, client.DeleteDevice(ctx, id)
		}
	case "updates":
		switch action {
		case "list":
			return client.Updates(ctx)
		case "get":
			return client.Update(ctx, id)
		case "delete":
			return nil, client.DeleteUpdate(ctx, id)
		}
	case "users":
		switch action {
		case "list":
			return client.Users(ctx)
		case "get":
			return client.User(ctx, id)
		case "delete":
			return nil, client.DeleteUser(ctx, id)
		}
	default:
		usage()
	}
	usage()
	return nil, nil
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: consolectl [-base URL] <partners|clients|licenses|devices|updates|users> <list|get|delete> [id]")
	os.Exit(2)
}
