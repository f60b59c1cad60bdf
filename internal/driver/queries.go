package driver

// Cypher for the persistence layer. Nested documents (architectures,
// reports) travel as a JSON payload property; scalar properties exist for
// matching, filtering and ordering.

const (
	SandboxExistsQuery = `
		MATCH (s:Sandbox {id: $id})
		RETURN s.id AS id
	`

	SaveSandboxQuery = `
		CREATE (s:Sandbox {
			id: $id,
			project_name: $project_name,
			tech_stack: $tech_stack,
			total_cost: $total_cost,
			is_public: $is_public,
			views: 0,
			created_at: $created_at,
			payload: $payload
		})
		RETURN s.id AS id
	`

	GetSandboxQuery = `
		MATCH (s:Sandbox {id: $id})
		SET s.views = s.views + 1
		RETURN s.payload AS payload, s.views AS views
	`

	ListSandboxesQuery = `
		MATCH (s:Sandbox)
		WHERE s.is_public
			AND ($search = '' OR toLower(s.project_name) CONTAINS toLower($search))
			AND (size($tech_stack) = 0 OR any(t IN $tech_stack WHERE t IN s.tech_stack))
			AND s.total_cost >= $min_cost AND s.total_cost <= $max_cost
		RETURN s.payload AS payload, s.views AS views
		ORDER BY s.created_at DESC
		SKIP $skip LIMIT $limit
	`

	SaveReportQuery = `
		CREATE (r:CarbonReport {
			id: $id,
			user_id: $user_id,
			hash: $hash,
			carbon_kg: $carbon_kg,
			created_at: $created_at,
			payload: $payload
		})
		RETURN r.id AS id
	`

	GetReportQuery = `
		MATCH (r:CarbonReport {id: $id})
		RETURN r.payload AS payload, r.hash AS hash
	`

	GetReportByHashQuery = `
		MATCH (r:CarbonReport {hash: $hash})
		RETURN r.payload AS payload, r.hash AS hash
		LIMIT 1
	`

	ListReportsQuery = `
		MATCH (r:CarbonReport)
		RETURN r.payload AS payload, r.hash AS hash
		ORDER BY r.created_at DESC
		SKIP $skip LIMIT $limit
	`

	SavePointsTxQuery = `
		CREATE (t:PointsTx {
			id: $id,
			user_id: $user_id,
			points: $points,
			reason: $reason,
			category: $category,
			timestamp: $timestamp
		})
		RETURN t.id AS id
	`

	UpsertUserPointsQuery = `
		MERGE (u:GreenUser {id: $user_id})
		ON CREATE SET u.total_points = 0, u.total_carbon_saved_kg = 0.0, u.created_at = $now
		SET u.total_points = u.total_points + $points,
			u.total_carbon_saved_kg = u.total_carbon_saved_kg + $carbon_saved_kg
		RETURN u.total_points AS total_points
	`

	GetUserQuery = `
		MATCH (u:GreenUser {id: $user_id})
		OPTIONAL MATCH (u)-[:EARNED]->(b:Badge)
		RETURN u.total_points AS total_points,
			u.total_carbon_saved_kg AS total_carbon_saved_kg,
			count(b) AS badges_count
	`

	PointsHistoryQuery = `
		MATCH (t:PointsTx {user_id: $user_id})
		RETURN t.id AS id, t.points AS points, t.reason AS reason,
			t.category AS category, t.timestamp AS timestamp
		ORDER BY t.timestamp DESC
		LIMIT $limit
	`

	GrantBadgeQuery = `
		MATCH (u:GreenUser {id: $user_id})
		MERGE (b:Badge {id: $badge_id, user_id: $user_id})
		ON CREATE SET b.earned_at = $earned_at, b.created = true
		ON MATCH SET b.created = false
		MERGE (u)-[:EARNED]->(b)
		RETURN b.created AS created, b.earned_at AS earned_at
	`

	UserBadgesQuery = `
		MATCH (u:GreenUser {id: $user_id})-[:EARNED]->(b:Badge)
		RETURN b.id AS id, b.earned_at AS earned_at
		ORDER BY b.earned_at
	`

	LeaderboardQuery = `
		MATCH (u:GreenUser)
		OPTIONAL MATCH (u)-[:EARNED]->(b:Badge)
		RETURN u.id AS id, u.total_points AS total_points,
			u.total_carbon_saved_kg AS total_carbon_saved_kg,
			collect(b.id) AS badge_ids
		ORDER BY total_points DESC
		LIMIT $limit
	`
)
