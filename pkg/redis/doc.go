// Package redis connects to Redis with retries and exposes a readiness check.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	healthz := httpserver.HealthCheckHandler(log, redis.Healthcheck(client))
//
// Config is loaded with pkg/config. An empty REDIS_URL means Redis is not
// configured; callers check Config.Enabled before connecting.
package redis
