package services

import "github.com/gopherpath/gopherpath_api/dto"

func curriculumModules() []dto.ModuleResponse {
	return []dto.ModuleResponse{
		{
			ID:             "beginner",
			Title:          "Beginner",
			Description:    "Start your Go journey from scratch. Learn the fundamentals of Go programming with hands-on exercises.",
			Difficulty:     "beginner",
			EstimatedHours: 12,
			Color:          "green",
			Icon:           "GraduationCap",
			Lessons: []dto.LessonResponse{
				{ID: "setup", Title: "Go Setup & Hello World", Description: "Install Go and write your first program", Duration: 30, Order: 1},
				{ID: "variables", Title: "Variables & Data Types", Description: "Learn about Go's type system", Duration: 45, Order: 2},
				{ID: "control-flow", Title: "Control Flow", Description: "Master if/else statements and switch", Duration: 45, Order: 3},
				{ID: "loops", Title: "Loops", Description: "Learn for loops and range iterations", Duration: 40, Order: 4},
				{ID: "functions", Title: "Functions & Return Values", Description: "Create reusable code with functions", Duration: 50, Order: 5},
				{ID: "arrays-slices", Title: "Arrays & Slices", Description: "Work with collections of data", Duration: 55, Order: 6},
				{ID: "maps", Title: "Maps", Description: "Use key-value data structures", Duration: 40, Order: 7},
				{ID: "structs", Title: "Structs", Description: "Create custom data types", Duration: 50, Order: 8},
				{ID: "methods", Title: "Methods", Description: "Add behavior to your structs", Duration: 45, Order: 9},
				{ID: "interfaces", Title: "Interfaces", Description: "Write flexible, polymorphic code", Duration: 55, Order: 10},
				{ID: "error-handling", Title: "Error Handling", Description: "Handle errors the Go way", Duration: 45, Order: 11},
				{ID: "packages", Title: "Packages & Imports", Description: "Organize and share your code", Duration: 40, Order: 12},
				{ID: "file-io", Title: "File I/O", Description: "Read and write files", Duration: 45, Order: 13},
				{ID: "json", Title: "JSON Encoding/Decoding", Description: "Work with JSON data", Duration: 40, Order: 14},
				{ID: "cli-project-1", Title: "CLI Project Part 1", Description: "Planning & Setup", Duration: 60, Order: 15},
				{ID: "cli-project-2", Title: "CLI Project Part 2", Description: "Implementation & Testing", Duration: 75, Order: 16},
			},
		},
		{
			ID:             "intermediate",
			Title:          "Intermediate",
			Description:    "Build real-world applications. Learn concurrency, web development, and database integration.",
			Difficulty:     "intermediate",
			EstimatedHours: 20,
			Color:          "yellow",
			Icon:           "Rocket",
			Lessons: []dto.LessonResponse{
				{ID: "goroutines", Title: "Goroutines Basics", Description: "Introduction to concurrent programming", Duration: 50, Order: 1},
				{ID: "channels", Title: "Channels & Communication", Description: "Safe data sharing between goroutines", Duration: 55, Order: 2},
				{ID: "http-basics", Title: "HTTP Package Basics", Description: "Build your first web server", Duration: 45, Order: 3},
				{ID: "rest-design", Title: "REST API Design", Description: "Design principles for APIs", Duration: 50, Order: 4},
				{ID: "gin-intro", Title: "Gin Framework Introduction", Description: "Fast HTTP web framework", Duration: 55, Order: 5},
				{ID: "middleware", Title: "Middleware & Request Handling", Description: "Process requests with middleware", Duration: 50, Order: 6},
				{ID: "postgresql", Title: "PostgreSQL Setup & Connection", Description: "Connect Go to PostgreSQL", Duration: 45, Order: 7},
				{ID: "gorm", Title: "GORM ORM Basics", Description: "Object-relational mapping in Go", Duration: 55, Order: 8},
				{ID: "sql-nosql", Title: "SQL vs NoSQL Comparison", Description: "Choose the right database", Duration: 40, Order: 9},
				{ID: "env-config", Title: "Environment Configuration", Description: "Manage app configuration", Duration: 35, Order: 10},
				{ID: "testing", Title: "Testing with testing package", Description: "Write tests for your code", Duration: 50, Order: 11},
				{ID: "debugging", Title: "Debugging Techniques", Description: "Find and fix bugs efficiently", Duration: 45, Order: 12},
				{ID: "blog-1", Title: "Blog API Part 1", Description: "Project Setup", Duration: 60, Order: 13},
				{ID: "blog-2", Title: "Blog API Part 2", Description: "User Model & Auth", Duration: 75, Order: 14},
				{ID: "blog-3", Title: "Blog API Part 3", Description: "Post CRUD", Duration: 70, Order: 15},
				{ID: "blog-4", Title: "Blog API Part 4", Description: "Comments & Relations", Duration: 65, Order: 16},
				{ID: "blog-5", Title: "Blog API Part 5", Description: "Validation & Error Handling", Duration: 60, Order: 17},
				{ID: "blog-6", Title: "Blog API Part 6", Description: "Middleware & Security", Duration: 65, Order: 18},
				{ID: "blog-7", Title: "Blog API Part 7", Description: "Testing", Duration: 70, Order: 19},
				{ID: "blog-8", Title: "Blog API Part 8", Description: "Deployment Prep", Duration: 60, Order: 20},
			},
		},
		{
			ID:             "advanced",
			Title:          "Advanced",
			Description:    "Master production-ready skills. Learn microservices, cloud deployment, and performance optimization.",
			Difficulty:     "advanced",
			EstimatedHours: 30,
			Color:          "red",
			Icon:           "Zap",
			Lessons: []dto.LessonResponse{
				{ID: "microservices", Title: "Microservices Architecture", Description: "Design scalable systems", Duration: 60, Order: 1},
				{ID: "grpc", Title: "gRPC & Protocol Buffers", Description: "High-performance RPC", Duration: 65, Order: 2},
				{ID: "jwt", Title: "JWT Authentication", Description: "Secure token-based auth", Duration: 55, Order: 3},
				{ID: "oauth2", Title: "OAuth2 Implementation", Description: "Third-party authentication", Duration: 60, Order: 4},
				{ID: "mongodb", Title: "MongoDB Integration", Description: "NoSQL database operations", Duration: 55, Order: 5},
				{ID: "redis", Title: "Redis Caching Strategies", Description: "Speed up your apps", Duration: 50, Order: 6},
				{ID: "docker-basics", Title: "Docker Basics", Description: "Containerize your apps", Duration: 55, Order: 7},
				{ID: "dockerfile", Title: "Dockerfile for Go Apps", Description: "Optimize Go containers", Duration: 50, Order: 8},
				{ID: "docker-compose", Title: "Docker Compose Multi-Container", Description: "Orchestrate services", Duration: 55, Order: 9},
				{ID: "kubernetes", Title: "Kubernetes Introduction", Description: "Container orchestration", Duration: 70, Order: 10},
				{ID: "cicd", Title: "CI/CD Pipeline Setup", Description: "Automate deployments", Duration: 65, Order: 11},
				{ID: "api-security", Title: "API Security Best Practices", Description: "Secure your APIs", Duration: 55, Order: 12},
				{ID: "rate-limiting", Title: "Rate Limiting & Throttling", Description: "Protect against abuse", Duration: 45, Order: 13},
				{ID: "performance", Title: "Performance Optimization", Description: "Make your apps faster", Duration: 60, Order: 14},
				{ID: "profiling", Title: "Profiling & Benchmarking", Description: "Measure performance", Duration: 55, Order: 15},
				{ID: "load-testing", Title: "Load Testing", Description: "Test under pressure", Duration: 50, Order: 16},
				{ID: "aws", Title: "AWS Deployment", Description: "Deploy to the cloud", Duration: 70, Order: 17},
				{ID: "production", Title: "Production Best Practices", Description: "Run apps in production", Duration: 55, Order: 18},
				{ID: "capstone-1", Title: "Capstone Part 1", Description: "Architecture Design", Duration: 90, Order: 19},
				{ID: "capstone-2", Title: "Capstone Part 2", Description: "User Service", Duration: 90, Order: 20},
				{ID: "capstone-3", Title: "Capstone Part 3", Description: "Post Service", Duration: 90, Order: 21},
				{ID: "capstone-4", Title: "Capstone Part 4", Description: "Real-time Features", Duration: 90, Order: 22},
				{ID: "capstone-5", Title: "Capstone Part 5", Description: "Deployment", Duration: 90, Order: 23},
				{ID: "capstone-6", Title: "Capstone Part 6", Description: "Monitoring & Scaling", Duration: 90, Order: 24},
			},
		},
	}
}

func challengeCatalog() []dto.ChallengeDetailResponse {
	return []dto.ChallengeDetailResponse{
		{
			ChallengeSummaryResponse: dto.ChallengeSummaryResponse{
				ID:            "hello-world",
				Title:         "Hello, Go!",
				Description:   "Write a program that prints 'Hello, Go!' to the console.",
				Difficulty:    "easy",
				Category:      "basics",
				EstimatedTime: 5,
			},
			StarterCode: "package main\n\nimport \"fmt\"\n\nfunc main() {\n    // Your code here\n}",
			TestCases: []dto.TestCaseResponse{
				{Input: "", ExpectedOutput: "Hello, Go!", Description: "Should print Hello, Go!"},
			},
			Hints:    []string{"Use fmt.Println() to print text"},
			Solution: "package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello, Go!\")\n}",
		},
		{
			ChallengeSummaryResponse: dto.ChallengeSummaryResponse{
				ID:            "sum-two-numbers",
				Title:         "Sum Two Numbers",
				Description:   "Create a function that takes two integers and returns their sum.",
				Difficulty:    "easy",
				Category:      "functions",
				EstimatedTime: 10,
			},
			StarterCode: "package main\n\nfunc sum(a, b int) int {\n    // Your code here\n    return 0\n}",
			TestCases: []dto.TestCaseResponse{
				{Input: "sum(2, 3)", ExpectedOutput: "5", Description: "sum(2, 3) should return 5"},
				{Input: "sum(-1, 1)", ExpectedOutput: "0", Description: "sum(-1, 1) should return 0"},
				{Input: "sum(0, 0)", ExpectedOutput: "0", Description: "sum(0, 0) should return 0"},
			},
			Hints:    []string{"Simply add the two numbers together", "Remember Go functions use explicit return"},
			Solution: "package main\n\nfunc sum(a, b int) int {\n    return a + b\n}",
		},
		{
			ChallengeSummaryResponse: dto.ChallengeSummaryResponse{
				ID:            "fizzbuzz",
				Title:         "FizzBuzz",
				Description:   "Write a function that returns 'Fizz' for multiples of 3, 'Buzz' for multiples of 5, 'FizzBuzz' for multiples of both, or the number as a string.",
				Difficulty:    "easy",
				Category:      "control-flow",
				EstimatedTime: 15,
			},
			StarterCode: "package main\n\nimport \"strconv\"\n\nfunc fizzBuzz(n int) string {\n    // Your code here\n    return \"\"\n}",
			TestCases: []dto.TestCaseResponse{
				{Input: "fizzBuzz(3)", ExpectedOutput: "Fizz", Description: "3 should return Fizz"},
				{Input: "fizzBuzz(5)", ExpectedOutput: "Buzz", Description: "5 should return Buzz"},
				{Input: "fizzBuzz(15)", ExpectedOutput: "FizzBuzz", Description: "15 should return FizzBuzz"},
				{Input: "fizzBuzz(7)", ExpectedOutput: "7", Description: "7 should return 7"},
			},
			Hints:    []string{"Use the modulo operator %", "Check for FizzBuzz first", "Use strconv.Itoa to convert int to string"},
			Solution: "package main\n\nimport \"strconv\"\n\nfunc fizzBuzz(n int) string {\n    if n%3 == 0 && n%5 == 0 {\n        return \"FizzBuzz\"\n    }\n    if n%3 == 0 {\n        return \"Fizz\"\n    }\n    if n%5 == 0 {\n        return \"Buzz\"\n    }\n    return strconv.Itoa(n)\n}",
		},
		{
			ChallengeSummaryResponse: dto.ChallengeSummaryResponse{
				ID:            "reverse-string",
				Title:         "Reverse String",
				Description:   "Write a function that reverses a string.",
				Difficulty:    "medium",
				Category:      "strings",
				EstimatedTime: 20,
			},
			StarterCode: "package main\n\nfunc reverse(s string) string {\n    // Your code here\n    return \"\"\n}",
			TestCases: []dto.TestCaseResponse{
				{Input: "reverse(\"hello\")", ExpectedOutput: "olleh", Description: "hello should become olleh"},
				{Input: "reverse(\"Go\")", ExpectedOutput: "oG", Description: "Go should become oG"},
				{Input: "reverse(\"\")", ExpectedOutput: "", Description: "Empty string should return empty"},
			},
			Hints:    []string{"Convert string to rune slice for proper unicode handling", "Use two pointers technique"},
			Solution: "package main\n\nfunc reverse(s string) string {\n    runes := []rune(s)\n    for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {\n        runes[i], runes[j] = runes[j], runes[i]\n    }\n    return string(runes)\n}",
		},
		{
			ChallengeSummaryResponse: dto.ChallengeSummaryResponse{
				ID:            "palindrome",
				Title:         "Palindrome Check",
				Description:   "Write a function that checks if a string is a palindrome (reads same forwards and backwards).",
				Difficulty:    "medium",
				Category:      "strings",
				EstimatedTime: 20,
			},
			StarterCode: "package main\n\nfunc isPalindrome(s string) bool {\n    // Your code here\n    return false\n}",
			TestCases: []dto.TestCaseResponse{
				{Input: "isPalindrome(\"racecar\")", ExpectedOutput: "true", Description: "racecar is a palindrome"},
				{Input: "isPalindrome(\"hello\")", ExpectedOutput: "false", Description: "hello is not a palindrome"},
				{Input: "isPalindrome(\"a\")", ExpectedOutput: "true", Description: "Single char is palindrome"},
			},
			Hints:    []string{"Compare characters from both ends", "Use runes for unicode support"},
			Solution: "package main\n\nfunc isPalindrome(s string) bool {\n    runes := []rune(s)\n    for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {\n        if runes[i] != runes[j] {\n            return false\n        }\n    }\n    return true\n}",
		},
		{
			ChallengeSummaryResponse: dto.ChallengeSummaryResponse{
				ID:            "concurrent-sum",
				Title:         "Concurrent Sum",
				Description:   "Use goroutines and channels to sum an array of numbers concurrently, splitting work into two parts.",
				Difficulty:    "hard",
				Category:      "concurrency",
				EstimatedTime: 30,
			},
			StarterCode: "package main\n\nfunc concurrentSum(nums []int) int {\n    // Your code here\n    // Use goroutines and channels\n    return 0\n}",
			TestCases: []dto.TestCaseResponse{
				{Input: "concurrentSum([]int{1,2,3,4})", ExpectedOutput: "10", Description: "Sum of 1+2+3+4 = 10"},
				{Input: "concurrentSum([]int{10,20,30,40})", ExpectedOutput: "100", Description: "Sum of 10+20+30+40 = 100"},
			},
			Hints:    []string{"Split the array in half", "Use a channel to receive partial sums", "Don't forget to read from both goroutines"},
			Solution: "package main\n\nfunc concurrentSum(nums []int) int {\n    ch := make(chan int)\n    mid := len(nums) / 2\n\n    sumSlice := func(slice []int) {\n        sum := 0\n        for _, n := range slice {\n            sum += n\n        }\n        ch <- sum\n    }\n\n    go sumSlice(nums[:mid])\n    go sumSlice(nums[mid:])\n\n    return <-ch + <-ch\n}",
		},
	}
}
