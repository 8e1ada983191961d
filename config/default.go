package config

// DefaultConfigYAML 内置默认配置，可被外部配置文件或环境变量覆盖
var DefaultConfigYAML = []byte(`server:
  port: ":8081"
  mode: "release"
  base_url: "http://localhost:8081"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "chatbridge"
  password: "chatbridge"
  dbname: "chatbridge"
  charset: "utf8mb4"

jwt:
  secret: "change-me-in-production"
  expire_hours: 24

ai:
  base_url: "https://api.openai.com/v1"
  api_key: ""
  model: "gpt-4o-mini"
  timeout_seconds: 60

email:
  enabled: false
  host: ""
  port: 465
  username: ""
  password: ""
  from: "ChatBridge"
`)
