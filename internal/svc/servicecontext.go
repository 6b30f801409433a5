package svc

import (
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	cachekeys "amur-data-api/internal/cache"
	"amur-data-api/internal/config"
	"amur-data-api/internal/pairs"
	"amur-data-api/internal/repo"
)

type ServiceContext struct {
	Config      config.Config
	PairsConfig *pairs.Config

	DBConn sqlx.SqlConn
	Redis  *redis.Redis

	Pairs *repo.PairsRepo
}

func NewServiceContext(c config.Config) *ServiceContext {
	pairsCfg := c.PairsConfig()

	conn := sqlx.NewSqlConn("pgx", c.Postgres.DSN)

	var rds *redis.Redis
	if c.Redis.Host != "" {
		rds = redis.MustNewRedis(c.Redis)
	}

	adapter := pairs.NewAdapter(conn, pairsCfg)
	ttl := cachekeys.NewTTLSet(c.TTL)

	svc := &ServiceContext{
		Config:      c,
		PairsConfig: pairsCfg,
		DBConn:      conn,
	}
	if rds != nil {
		svc.Redis = rds
		svc.Pairs = repo.NewPairsRepo(adapter, rds, ttl)
	} else {
		svc.Pairs = repo.NewPairsRepo(adapter, nil, ttl)
	}
	return svc
}
