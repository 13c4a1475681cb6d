package model

import "time"

// SeedUsers returns the built-in mock roster. The returned slice is a fresh
// copy on every call so callers may append (registration) without affecting
// later seeds.
func SeedUsers() []User {
	return []User{
		{ID: 1, FirstName: "Alice", LastName: "Martin", Email: "alice.martin@company.com", Password: "password123", Role: "Frontend Developer", Position: "Senior", JoinDate: "2023-06-15", IsActive: true},
		{ID: 2, FirstName: "Bob", LastName: "Johnson", Email: "bob.johnson@company.com", Password: "password123", Role: "Backend Developer", Position: "Senior", JoinDate: "2023-05-20", IsActive: true},
		{ID: 3, FirstName: "Carol", LastName: "Williams", Email: "carol.williams@company.com", Password: "password123", Role: "UI/UX Designer", Position: "Mid-level", JoinDate: "2023-07-10", IsActive: true},
		{ID: 4, FirstName: "David", LastName: "Brown", Email: "david.brown@company.com", Password: "password123", Role: "Project Manager", Position: "Senior", JoinDate: "2023-04-01", IsActive: true},
		{ID: 5, FirstName: "Emma", LastName: "Davis", Email: "emma.davis@company.com", Password: "password123", Role: "Full Stack Developer", Position: "Mid-level", JoinDate: "2023-08-15", IsActive: true},
		{ID: 6, FirstName: "Frank", LastName: "Miller", Email: "frank.miller@company.com", Password: "password123", Role: "DevOps Engineer", Position: "Senior", JoinDate: "2023-03-12", IsActive: true},
		{ID: 7, FirstName: "Grace", LastName: "Wilson", Email: "grace.wilson@company.com", Password: "password123", Role: "QA Engineer", Position: "Mid-level", JoinDate: "2023-09-01", IsActive: true},
		{ID: 8, FirstName: "Henry", LastName: "Moore", Email: "henry.moore@company.com", Password: "password123", Role: "Frontend Developer", Position: "Junior", JoinDate: "2023-10-05", IsActive: true},
		{ID: 9, FirstName: "Ivy", LastName: "Taylor", Email: "ivy.taylor@company.com", Password: "password123", Role: "Product Manager", Position: "Senior", JoinDate: "2023-02-28", IsActive: true},
		{ID: 10, FirstName: "Jack", LastName: "Anderson", Email: "jack.anderson@company.com", Password: "password123", Role: "Backend Developer", Position: "Junior", JoinDate: "2023-11-10", IsActive: true},
		{ID: 11, FirstName: "Kate", LastName: "Thomas", Email: "kate.thomas@company.com", Password: "password123", Role: "UI/UX Designer", Position: "Senior", JoinDate: "2023-01-15", IsActive: true},
		{ID: 12, FirstName: "Liam", LastName: "Jackson", Email: "liam.jackson@company.com", Password: "password123", Role: "Full Stack Developer", Position: "Senior", JoinDate: "2022-12-01", IsActive: true},
	}
}

func d(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// SeedProjects returns the built-in demo project set. Projects live only in
// memory; every process start begins from this set again.
func SeedProjects() []Project {
	return []Project{
		{
			ID:            1,
			Name:          "E-commerce Platform ModernShop",
			Description:   "Development of a modern online store with React and Node.js, featuring advanced search, payment integration, and inventory management.",
			Status:        StatusActive,
			Priority:      PriorityHigh,
			StartDate:     "2024-01-15",
			EndDate:       "2024-03-15",
			AssignedUsers: []int{1, 2, 3, 4},
			Progress:      75,
			CreatedAt:     d("2024-01-10"),
			CreatedBy:     4,
			Budget:        25000,
			Technologies:  []string{"React", "Node.js", "MongoDB", "Stripe"},
		},
		{
			ID:            2,
			Name:          "Mobile Banking App",
			Description:   "Secure mobile banking application with biometric authentication, real-time transactions, and comprehensive financial dashboard.",
			Status:        StatusActive,
			Priority:      PriorityCritical,
			StartDate:     "2024-02-01",
			EndDate:       "2024-05-01",
			AssignedUsers: []int{2, 5, 6, 7},
			Progress:      45,
			CreatedAt:     d("2024-01-25"),
			CreatedBy:     9,
			Budget:        45000,
			Technologies:  []string{"React Native", "Express", "PostgreSQL", "JWT"},
		},
		{
			ID:            3,
			Name:          "Corporate Website Redesign",
			Description:   "Complete redesign of company website with modern UI/UX, improved performance, and mobile-first approach.",
			Status:        StatusCompleted,
			Priority:      PriorityMedium,
			StartDate:     "2023-11-01",
			EndDate:       "2024-01-01",
			AssignedUsers: []int{1, 3, 8},
			Progress:      100,
			CreatedAt:     d("2023-10-20"),
			CreatedBy:     4,
			Budget:        15000,
			Technologies:  []string{"Next.js", "Tailwind CSS", "Vercel"},
		},
		{
			ID:            4,
			Name:          "Inventory Management System",
			Description:   "Comprehensive inventory tracking system with real-time updates, automated reordering, and detailed analytics.",
			Status:        StatusActive,
			Priority:      PriorityHigh,
			StartDate:     "2024-01-20",
			EndDate:       "2024-04-20",
			AssignedUsers: []int{2, 5, 10},
			Progress:      60,
			CreatedAt:     d("2024-01-15"),
			CreatedBy:     9,
			Budget:        30000,
			Technologies:  []string{"Vue.js", "Laravel", "MySQL", "Redis"},
		},
		{
			ID:            5,
			Name:          "Customer Support Portal",
			Description:   "Self-service customer support portal with ticket system, knowledge base, and live chat integration.",
			Status:        StatusPaused,
			Priority:      PriorityMedium,
			StartDate:     "2023-12-01",
			EndDate:       "2024-03-01",
			AssignedUsers: []int{1, 7, 11},
			Progress:      30,
			CreatedAt:     d("2023-11-25"),
			CreatedBy:     4,
			Budget:        20000,
			Technologies:  []string{"Angular", "Spring Boot", "PostgreSQL"},
		},
		{
			ID:            6,
			Name:          "Data Analytics Dashboard",
			Description:   "Interactive dashboard for business intelligence with real-time data visualization and custom reporting features.",
			Status:        StatusActive,
			Priority:      PriorityHigh,
			StartDate:     "2024-02-15",
			EndDate:       "2024-05-15",
			AssignedUsers: []int{5, 6, 12},
			Progress:      25,
			CreatedAt:     d("2024-02-10"),
			CreatedBy:     9,
			Budget:        35000,
			Technologies:  []string{"React", "D3.js", "Python", "FastAPI"},
		},
		{
			ID:            7,
			Name:          "HR Management System",
			Description:   "Complete HR solution with employee onboarding, performance tracking, payroll integration, and document management.",
			Status:        StatusCompleted,
			Priority:      PriorityMedium,
			StartDate:     "2023-09-01",
			EndDate:       "2023-12-01",
			AssignedUsers: []int{2, 4, 8, 10},
			Progress:      100,
			CreatedAt:     d("2023-08-20"),
			CreatedBy:     4,
			Budget:        40000,
			Technologies:  []string{"React", "Node.js", "MongoDB", "AWS"},
		},
		{
			ID:            8,
			Name:          "Social Media Management Tool",
			Description:   "Multi-platform social media management with scheduling, analytics, and team collaboration features.",
			Status:        StatusActive,
			Priority:      PriorityMedium,
			StartDate:     "2024-01-10",
			EndDate:       "2024-04-10",
			AssignedUsers: []int{1, 3, 5, 11},
			Progress:      55,
			CreatedAt:     d("2024-01-05"),
			CreatedBy:     9,
			Budget:        28000,
			Technologies:  []string{"Vue.js", "Express", "Redis", "Socket.io"},
		},
		{
			ID:            9,
			Name:          "Learning Management System",
			Description:   "Educational platform with course creation, student tracking, assessments, and video streaming capabilities.",
			Status:        StatusActive,
			Priority:      PriorityHigh,
			StartDate:     "2024-02-20",
			EndDate:       "2024-06-20",
			AssignedUsers: []int{2, 6, 7, 12},
			Progress:      35,
			CreatedAt:     d("2024-02-15"),
			CreatedBy:     4,
			Budget:        50000,
			Technologies:  []string{"React", "Django", "PostgreSQL", "AWS S3"},
		},
		{
			ID:            10,
			Name:          "IoT Device Dashboard",
			Description:   "Real-time monitoring dashboard for IoT devices with alerts, data visualization, and remote control capabilities.",
			Status:        StatusActive,
			Priority:      PriorityCritical,
			StartDate:     "2024-03-01",
			EndDate:       "2024-06-01",
			AssignedUsers: []int{5, 6, 8},
			Progress:      20,
			CreatedAt:     d("2024-02-25"),
			CreatedBy:     9,
			Budget:        42000,
			Technologies:  []string{"React", "Node.js", "InfluxDB", "MQTT"},
		},
		{
			ID:            11,
			Name:          "Event Management Platform",
			Description:   "Comprehensive event planning and management system with booking, payments, and attendee management.",
			Status:        StatusCompleted,
			Priority:      PriorityLow,
			StartDate:     "2023-08-01",
			EndDate:       "2023-11-01",
			AssignedUsers: []int{1, 3, 7},
			Progress:      100,
			CreatedAt:     d("2023-07-20"),
			CreatedBy:     4,
			Budget:        22000,
			Technologies:  []string{"Angular", "ASP.NET", "SQL Server"},
		},
		{
			ID:            12,
			Name:          "Cryptocurrency Trading Bot",
			Description:   "Automated trading bot with machine learning algorithms, risk management, and portfolio optimization.",
			Status:        StatusCancelled,
			Priority:      PriorityLow,
			StartDate:     "2023-10-01",
			EndDate:       "2024-01-01",
			AssignedUsers: []int{2, 12},
			Progress:      15,
			CreatedAt:     d("2023-09-25"),
			CreatedBy:     9,
			Budget:        18000,
			Technologies:  []string{"Python", "TensorFlow", "PostgreSQL"},
		},
		{
			ID:            13,
			Name:          "Restaurant POS System",
			Description:   "Point of sale system for restaurants with order management, inventory tracking, and payment processing.",
			Status:        StatusActive,
			Priority:      PriorityMedium,
			StartDate:     "2024-01-25",
			EndDate:       "2024-04-25",
			AssignedUsers: []int{1, 5, 10},
			Progress:      65,
			CreatedAt:     d("2024-01-20"),
			CreatedBy:     4,
			Budget:        32000,
			Technologies:  []string{"React", "Express", "MongoDB", "Stripe"},
		},
		{
			ID:            14,
			Name:          "Fitness Tracking App",
			Description:   "Mobile fitness application with workout tracking, nutrition logging, and social features for motivation.",
			Status:        StatusActive,
			Priority:      PriorityMedium,
			StartDate:     "2024-02-10",
			EndDate:       "2024-05-10",
			AssignedUsers: []int{3, 8, 11},
			Progress:      40,
			CreatedAt:     d("2024-02-05"),
			CreatedBy:     9,
			Budget:        26000,
			Technologies:  []string{"React Native", "Firebase", "Node.js"},
		},
		{
			ID:            15,
			Name:          "Real Estate Portal",
			Description:   "Property listing platform with advanced search, virtual tours, and mortgage calculator integration.",
			Status:        StatusCompleted,
			Priority:      PriorityMedium,
			StartDate:     "2023-07-01",
			EndDate:       "2023-10-01",
			AssignedUsers: []int{1, 2, 4, 6},
			Progress:      100,
			CreatedAt:     d("2023-06-25"),
			CreatedBy:     4,
			Budget:        38000,
			Technologies:  []string{"Next.js", "Prisma", "PostgreSQL", "Mapbox"},
		},
		{
			ID:            16,
			Name:          "Video Streaming Platform",
			Description:   "Netflix-like streaming service with content management, user subscriptions, and recommendation engine.",
			Status:        StatusActive,
			Priority:      PriorityHigh,
			StartDate:     "2024-03-15",
			EndDate:       "2024-08-15",
			AssignedUsers: []int{2, 5, 6, 12},
			Progress:      10,
			CreatedAt:     d("2024-03-10"),
			CreatedBy:     9,
			Budget:        65000,
			Technologies:  []string{"React", "Node.js", "AWS", "FFmpeg"},
		},
		{
			ID:            17,
			Name:          "Task Management Tool",
			Description:   "Team collaboration tool with task assignment, time tracking, and project timeline visualization.",
			Status:        StatusActive,
			Priority:      PriorityMedium,
			StartDate:     "2024-01-30",
			EndDate:       "2024-04-30",
			AssignedUsers: []int{1, 7, 8},
			Progress:      70,
			CreatedAt:     d("2024-01-25"),
			CreatedBy:     4,
			Budget:        24000,
			Technologies:  []string{"Vue.js", "Express", "MongoDB", "Socket.io"},
		},
		{
			ID:            18,
			Name:          "Weather Monitoring System",
			Description:   "Weather data collection and analysis system with predictive modeling and alert notifications.",
			Status:        StatusPaused,
			Priority:      PriorityLow,
			StartDate:     "2023-11-15",
			EndDate:       "2024-02-15",
			AssignedUsers: []int{6, 10},
			Progress:      25,
			CreatedAt:     d("2023-11-10"),
			CreatedBy:     9,
			Budget:        16000,
			Technologies:  []string{"Python", "Django", "PostgreSQL", "Celery"},
		},
		{
			ID:            19,
			Name:          "Blockchain Voting System",
			Description:   "Secure electronic voting platform using blockchain technology for transparency and immutability.",
			Status:        StatusActive,
			Priority:      PriorityCritical,
			StartDate:     "2024-02-25",
			EndDate:       "2024-07-25",
			AssignedUsers: []int{2, 6, 12},
			Progress:      30,
			CreatedAt:     d("2024-02-20"),
			CreatedBy:     9,
			Budget:        55000,
			Technologies:  []string{"Solidity", "Web3.js", "React", "IPFS"},
		},
		{
			ID:            20,
			Name:          "AI Chatbot Platform",
			Description:   "Intelligent chatbot platform with natural language processing, multi-channel support, and analytics.",
			Status:        StatusActive,
			Priority:      PriorityHigh,
			StartDate:     "2024-03-05",
			EndDate:       "2024-06-05",
			AssignedUsers: []int{5, 7, 11, 12},
			Progress:      15,
			CreatedAt:     d("2024-03-01"),
			CreatedBy:     4,
			Budget:        48000,
			Technologies:  []string{"Python", "TensorFlow", "React", "WebSocket"},
		},
	}
}
