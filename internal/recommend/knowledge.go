package recommend

// knowledgeBase is the built-in architecture guidance corpus the chat
// assistant retrieves from. Kept deliberately small; retrieval runs fully
// in memory.
var knowledgeBase = []string{
	`Microservices Architecture Best Practices:
- Use an API gateway (Kong, Nginx) as the single entry point
- Implement service discovery
- Use message queues (RabbitMQ, Kafka) for async communication
- Deploy to container orchestration (Kubernetes)
- Implement circuit breakers and retry logic
- Use distributed tracing (Datadog, New Relic)
- Database per service pattern`,

	`E-commerce Architecture Components:
- Frontend: Next.js or React for web
- Backend: FastAPI, Django, or Node.js/Express
- Database: PostgreSQL for transactions, MongoDB for product catalog
- Cache: Redis for session management and caching
- Search: Elasticsearch or Algolia for product search
- Payment: Stripe or PayPal integration
- Storage: AWS S3 or Cloudinary for product images
- CDN: Cloudflare for static asset delivery
- Queue: RabbitMQ for order processing`,

	`Cloud Platform Selection Guide:
- AWS: best for enterprise, most mature services, widest adoption
- Google Cloud: best for AI/ML, BigQuery for analytics, competitive pricing
- Azure: best for Microsoft ecosystem integration
- Vercel: best for Next.js and frontend deployments
- Heroku: best for rapid prototyping and simple deployments
- DigitalOcean: best for cost-effective VPS hosting`,

	`Database Selection Guide:
- PostgreSQL: ACID compliance, complex queries, relationships
- MongoDB: flexible schema, horizontal scaling, document storage
- MySQL: compatible with most applications, good performance
- Redis: in-memory caching, session storage, pub/sub
- Elasticsearch: full-text search, log analytics
- Cassandra: high write throughput, massive scale`,

	`Scalability Patterns:
- Horizontal scaling: add more servers behind a load balancer
- Database sharding: partition data across multiple databases
- Read replicas: separate read and write database instances
- Caching: Redis or Memcached for frequently accessed data
- CDN: Cloudflare or CloudFront for static assets
- Asynchronous processing: use queues for background jobs`,

	`High Availability Architecture:
- Multi-region deployment for disaster recovery
- Load balancers for traffic distribution
- Database replication (master-slave or multi-master)
- Health checks and automatic failover
- 99.9% availability: single region, load balancers
- 99.99% availability: multi-region, active-active
- 99.999% availability: global distribution, chaos engineering`,

	`Authentication & Authorization:
- Auth0: enterprise-grade, social login, MFA
- Firebase Auth: Google ecosystem, quick setup
- AWS Cognito: AWS integration, user pools
- Clerk: modern UI/UX, built-in components
- JWT tokens for stateless authentication
- OAuth2 for third-party integrations`,

	`AI/ML Integration:
- OpenAI API: GPT models, embeddings, chat completions
- Google Gemini: multimodal AI, competitive pricing
- Anthropic Claude: long context, safety-focused
- Hugging Face: open-source models, custom deployments
- AWS SageMaker: full ML platform, training and inference
- Use RAG (retrieval-augmented generation) for grounding`,

	`Cost Optimization Strategies:
- Use serverless for variable workloads (AWS Lambda, Cloud Run)
- Reserved instances for predictable workloads
- Auto-scaling to match demand
- CDN to reduce bandwidth costs
- Right-sizing: monitor and adjust instance sizes`,

	`Sustainability & Green Computing:
- Prefer low-carbon regions (Stockholm, Oregon, Sao Paulo run on hydro/nuclear)
- Serverless and autoscaling reduce idle energy draw
- ML inference dominates power budgets; batch where possible
- Carbon intensity varies more than 80x between cloud regions`,
}
