package catalog

import "github.com/astra-cloud/astra/internal/core/model"

// components is the built-in library. Base costs mirror entry-level managed
// pricing and deliberately stay coarse; the scaling model does the rest.
var components = []Component{
	// Frontend
	{ID: "nextjs", Name: "Next.js", Category: model.CategoryFrontend, PricingTier: "free", BaseCost: 0, Description: "React framework for production"},
	{ID: "react", Name: "React", Category: model.CategoryFrontend, PricingTier: "free", BaseCost: 0, Description: "JavaScript library for building UIs"},
	{ID: "vue", Name: "Vue.js", Category: model.CategoryFrontend, PricingTier: "free", BaseCost: 0, Description: "Progressive JavaScript framework"},
	{ID: "angular", Name: "Angular", Category: model.CategoryFrontend, PricingTier: "free", BaseCost: 0, Description: "Platform for building web applications"},
	{ID: "svelte", Name: "Svelte", Category: model.CategoryFrontend, PricingTier: "free", BaseCost: 0, Description: "Cybernetically enhanced web apps"},

	// Backend
	{ID: "fastapi", Name: "FastAPI", Category: model.CategoryBackend, PricingTier: "free", BaseCost: 0, Description: "Modern Python web framework"},
	{ID: "django", Name: "Django", Category: model.CategoryBackend, PricingTier: "free", BaseCost: 0, Description: "Python web framework"},
	{ID: "flask", Name: "Flask", Category: model.CategoryBackend, PricingTier: "free", BaseCost: 0, Description: "Lightweight Python framework"},
	{ID: "nodejs", Name: "Node.js", Category: model.CategoryBackend, PricingTier: "free", BaseCost: 0, Description: "JavaScript runtime"},
	{ID: "express", Name: "Express.js", Category: model.CategoryBackend, PricingTier: "free", BaseCost: 0, Description: "Node.js web framework"},
	{ID: "nestjs", Name: "NestJS", Category: model.CategoryBackend, PricingTier: "free", BaseCost: 0, Description: "Progressive Node.js framework"},
	{ID: "springboot", Name: "Spring Boot", Category: model.CategoryBackend, PricingTier: "free", BaseCost: 0, Description: "Java application framework"},
	{ID: "golang", Name: "Go/Gin", Category: model.CategoryBackend, PricingTier: "free", BaseCost: 0, Description: "Go web framework"},

	// Databases
	{ID: "postgresql", Name: "PostgreSQL", Category: model.CategoryDatabase, PricingTier: "managed", BaseCost: 25, Description: "Relational database"},
	{ID: "mongodb", Name: "MongoDB", Category: model.CategoryDatabase, PricingTier: "managed", BaseCost: 25, Description: "NoSQL document database"},
	{ID: "mysql", Name: "MySQL", Category: model.CategoryDatabase, PricingTier: "managed", BaseCost: 20, Description: "Relational database"},
	{ID: "redis", Name: "Redis", Category: model.CategoryDatabase, PricingTier: "managed", BaseCost: 15, Description: "In-memory data structure store"},
	{ID: "elasticsearch", Name: "Elasticsearch", Category: model.CategoryDatabase, PricingTier: "managed", BaseCost: 40, Description: "Search and analytics engine"},
	{ID: "cassandra", Name: "Cassandra", Category: model.CategoryDatabase, PricingTier: "managed", BaseCost: 35, Description: "Distributed NoSQL database"},

	// Hosting / deployment
	{ID: "vercel", Name: "Vercel", Category: model.CategoryHosting, PricingTier: "serverless", BaseCost: 20, Description: "Frontend cloud platform"},
	{ID: "netlify", Name: "Netlify", Category: model.CategoryHosting, PricingTier: "serverless", BaseCost: 19, Description: "Web hosting platform"},
	{ID: "aws_ec2", Name: "AWS EC2", Category: model.CategoryHosting, PricingTier: "compute", BaseCost: 50, Description: "Virtual servers"},
	{ID: "aws_lambda", Name: "AWS Lambda", Category: model.CategoryHosting, PricingTier: "serverless", BaseCost: 10, Description: "Serverless compute"},
	{ID: "gcp_compute", Name: "GCP Compute Engine", Category: model.CategoryHosting, PricingTier: "compute", BaseCost: 48, Description: "Virtual machines on GCP"},
	{ID: "gcp_cloud_run", Name: "Google Cloud Run", Category: model.CategoryHosting, PricingTier: "serverless", BaseCost: 12, Description: "Serverless containers"},
	{ID: "azure_vm", Name: "Azure VM", Category: model.CategoryHosting, PricingTier: "compute", BaseCost: 52, Description: "Virtual machines on Azure"},
	{ID: "heroku", Name: "Heroku", Category: model.CategoryHosting, PricingTier: "platform", BaseCost: 25, Description: "Cloud application platform"},
	{ID: "digitalocean", Name: "DigitalOcean", Category: model.CategoryHosting, PricingTier: "compute", BaseCost: 30, Description: "Cloud infrastructure provider"},

	// Storage
	{ID: "aws_s3", Name: "AWS S3", Category: model.CategoryStorage, PricingTier: "object_storage", BaseCost: 5, Description: "Object storage"},
	{ID: "gcp_storage", Name: "Google Cloud Storage", Category: model.CategoryStorage, PricingTier: "object_storage", BaseCost: 5, Description: "Object storage on GCP"},
	{ID: "azure_blob", Name: "Azure Blob Storage", Category: model.CategoryStorage, PricingTier: "object_storage", BaseCost: 5, Description: "Object storage on Azure"},
	{ID: "cloudinary", Name: "Cloudinary", Category: model.CategoryStorage, PricingTier: "media_storage", BaseCost: 15, Description: "Media management platform"},

	// API gateway / load balancing / CDN
	{ID: "nginx", Name: "Nginx", Category: model.CategoryInfrastructure, PricingTier: "free", BaseCost: 0, Description: "Web server and reverse proxy"},
	{ID: "kong", Name: "Kong", Category: model.CategoryInfrastructure, PricingTier: "enterprise", BaseCost: 50, Description: "API gateway"},
	{ID: "aws_alb", Name: "AWS Application Load Balancer", Category: model.CategoryInfrastructure, PricingTier: "managed", BaseCost: 25, Description: "Load balancing service"},
	{ID: "cloudflare", Name: "Cloudflare", Category: model.CategoryInfrastructure, PricingTier: "cdn", BaseCost: 20, Description: "CDN and DDoS protection"},

	// Authentication
	{ID: "auth0", Name: "Auth0", Category: model.CategoryAuthentication, PricingTier: "managed", BaseCost: 30, Description: "Authentication platform"},
	{ID: "firebase_auth", Name: "Firebase Auth", Category: model.CategoryAuthentication, PricingTier: "managed", BaseCost: 10, Description: "Google authentication service"},
	{ID: "cognito", Name: "AWS Cognito", Category: model.CategoryAuthentication, PricingTier: "managed", BaseCost: 15, Description: "User authentication service"},
	{ID: "clerk", Name: "Clerk", Category: model.CategoryAuthentication, PricingTier: "managed", BaseCost: 25, Description: "Complete user management"},

	// AI / ML services
	{ID: "openai", Name: "OpenAI API", Category: model.CategoryAIML, PricingTier: "api", BaseCost: 50, Description: "GPT and AI models"},
	{ID: "gemini", Name: "Google Gemini", Category: model.CategoryAIML, PricingTier: "api", BaseCost: 30, Description: "Google's AI model"},
	{ID: "anthropic", Name: "Anthropic Claude", Category: model.CategoryAIML, PricingTier: "api", BaseCost: 45, Description: "Claude AI model"},
	{ID: "huggingface", Name: "Hugging Face", Category: model.CategoryAIML, PricingTier: "api", BaseCost: 25, Description: "ML model hosting"},
	{ID: "aws_sagemaker", Name: "AWS SageMaker", Category: model.CategoryAIML, PricingTier: "managed", BaseCost: 100, Description: "ML platform"},

	// Message queues
	{ID: "rabbitmq", Name: "RabbitMQ", Category: model.CategoryMessaging, PricingTier: "managed", BaseCost: 20, Description: "Message broker"},
	{ID: "kafka", Name: "Apache Kafka", Category: model.CategoryMessaging, PricingTier: "managed", BaseCost: 40, Description: "Event streaming platform"},
	{ID: "aws_sqs", Name: "AWS SQS", Category: model.CategoryMessaging, PricingTier: "managed", BaseCost: 10, Description: "Message queue service"},
	{ID: "pubsub", Name: "Google Pub/Sub", Category: model.CategoryMessaging, PricingTier: "managed", BaseCost: 12, Description: "Messaging service"},

	// Monitoring & analytics
	{ID: "datadog", Name: "Datadog", Category: model.CategoryMonitoring, PricingTier: "enterprise", BaseCost: 60, Description: "Monitoring and analytics"},
	{ID: "newrelic", Name: "New Relic", Category: model.CategoryMonitoring, PricingTier: "enterprise", BaseCost: 55, Description: "Observability platform"},
	{ID: "prometheus", Name: "Prometheus", Category: model.CategoryMonitoring, PricingTier: "free", BaseCost: 0, Description: "Monitoring system"},
	{ID: "grafana", Name: "Grafana", Category: model.CategoryMonitoring, PricingTier: "free", BaseCost: 0, Description: "Analytics and visualization"},
	{ID: "google_analytics", Name: "Google Analytics", Category: model.CategoryAnalytics, PricingTier: "free", BaseCost: 0, Description: "Web analytics"},
	{ID: "mixpanel", Name: "Mixpanel", Category: model.CategoryAnalytics, PricingTier: "managed", BaseCost: 35, Description: "Product analytics"},
	{ID: "amplitude", Name: "Amplitude", Category: model.CategoryAnalytics, PricingTier: "managed", BaseCost: 40, Description: "Product analytics platform"},

	// CI/CD
	{ID: "github_actions", Name: "GitHub Actions", Category: model.CategoryCICD, PricingTier: "managed", BaseCost: 10, Description: "Automation platform"},
	{ID: "jenkins", Name: "Jenkins", Category: model.CategoryCICD, PricingTier: "free", BaseCost: 0, Description: "Automation server"},
	{ID: "circleci", Name: "CircleCI", Category: model.CategoryCICD, PricingTier: "managed", BaseCost: 15, Description: "CI/CD platform"},
	{ID: "gitlab_ci", Name: "GitLab CI", Category: model.CategoryCICD, PricingTier: "managed", BaseCost: 12, Description: "DevOps platform"},

	// Email
	{ID: "sendgrid", Name: "SendGrid", Category: model.CategoryEmail, PricingTier: "managed", BaseCost: 20, Description: "Email delivery service"},
	{ID: "mailgun", Name: "Mailgun", Category: model.CategoryEmail, PricingTier: "managed", BaseCost: 18, Description: "Email automation"},
	{ID: "ses", Name: "AWS SES", Category: model.CategoryEmail, PricingTier: "managed", BaseCost: 5, Description: "Email sending service"},

	// Payments
	{ID: "stripe", Name: "Stripe", Category: model.CategoryPayment, PricingTier: "transaction_fee", BaseCost: 0, Description: "Payment processing"},
	{ID: "paypal", Name: "PayPal", Category: model.CategoryPayment, PricingTier: "transaction_fee", BaseCost: 0, Description: "Payment platform"},
	{ID: "square", Name: "Square", Category: model.CategoryPayment, PricingTier: "transaction_fee", BaseCost: 0, Description: "Payment processing"},

	// Search
	{ID: "algolia", Name: "Algolia", Category: model.CategorySearch, PricingTier: "managed", BaseCost: 30, Description: "Search and discovery API"},
	{ID: "meilisearch", Name: "Meilisearch", Category: model.CategorySearch, PricingTier: "free", BaseCost: 0, Description: "Open-source search engine"},

	// Container orchestration
	{ID: "kubernetes", Name: "Kubernetes", Category: model.CategoryInfrastructure, PricingTier: "managed", BaseCost: 70, Description: "Container orchestration"},
	{ID: "docker", Name: "Docker", Category: model.CategoryInfrastructure, PricingTier: "free", BaseCost: 0, Description: "Containerization platform"},
}
