package content

import "github.com/ytareq/portfolio/internal/models"

var skills = []models.Skill{
	{Name: "Angular", Type: models.SkillTypeFrontend},
	{Name: "React", Type: models.SkillTypeFrontend},
	{Name: "TypeScript", Type: models.SkillTypeFrontend},
	{Name: "HTML/CSS", Type: models.SkillTypeFrontend},
	{Name: "SCSS/Sass", Type: models.SkillTypeFrontend},
	{Name: "Node.js", Type: models.SkillTypeBackend},
	{Name: "Express", Type: models.SkillTypeBackend},
	{Name: "Django", Type: models.SkillTypeBackend},
	{Name: "PostgreSQL", Type: models.SkillTypeBackend},
	{Name: "MongoDB", Type: models.SkillTypeBackend},
	{Name: "C#", Type: models.SkillTypeBackend},
	{Name: "Lua", Type: models.SkillTypeBackend},
	{Name: "Docker", Type: models.SkillTypeDevOps},
	{Name: "CI/CD", Type: models.SkillTypeDevOps},
	{Name: "Git", Type: models.SkillTypeDevOps},
	{Name: "Problem Solving", Type: models.SkillTypeSoft},
	{Name: "Communication", Type: models.SkillTypeSoft},
	{Name: "Team Leadership", Type: models.SkillTypeSoft},
	{Name: "Agile/Scrum", Type: models.SkillTypeSoft},
}

var milestones = []models.Milestone{
	{Year: "2025", Title: "Full Stack Developer", Description: "The POST - Remote position", Type: models.EntryTypeWork},
	{Year: "2024", Title: "Freelance Developer", Description: "Upwork, Fiverr and Khamsat - Building various web applications", Type: models.EntryTypeWork},
	{Year: "2023", Title: "Full Stack Training", Description: "NTI - National Telecommunication Institute", Type: models.EntryTypeEducation},
	{Year: "2023", Title: "Summer Training", Description: "Cairo Higher Institute (CHI) - Full-Stack Development", Type: models.EntryTypeEducation},
	{Year: "2023", Title: "Computer Science Degree", Description: "Bachelor's degree in Computer Science from Cairo Higher Institute", Type: models.EntryTypeEducation},
}

var experience = []models.ExperienceItem{
	{
		Title:        "Full Stack Developer",
		Company:      "The POST",
		Location:     "Remote",
		Period:       "2025 - Present",
		Description:  "Working as a full-stack developer on various projects, utilizing Angular, Node.js, and other technologies to build high-performance web applications.",
		Technologies: []string{"Angular", "Node.js", "Express", "MongoDB", "TypeScript"},
		Type:         models.EntryTypeWork,
	},
	{
		Title:        "Freelance Developer",
		Company:      "Upwork, Fiverr, Khamsat",
		Location:     "Remote",
		Period:       "2024 - 2025",
		Description:  "Contributed to and designed a number of projects that demonstrated skills in Django, Lua, Mean Stack, C#, and other technologies. Worked with clients worldwide to deliver custom web and desktop applications.",
		Technologies: []string{"Angular", "Django", "Node.js", "Lua", "MongoDB"},
		Type:         models.EntryTypeWork,
	},
	{
		Title:        "Full Stack Training",
		Company:      "NTI (National Telecommunication Institute)",
		Location:     "Cairo, Egypt",
		Period:       "2023",
		Description:  "Completed intensive training in full-stack development, focusing on modern web technologies and best practices for building scalable applications.",
		Technologies: []string{"JavaScript", "Node.js", "Angular", "MongoDB", "Express"},
		Type:         models.EntryTypeEducation,
	},
	{
		Title:        "Summer Training",
		Company:      "Cairo Higher Institute (CHI)",
		Location:     "Cairo, Egypt",
		Period:       "2023",
		Description:  "Participated in a summer training program focused on full-stack development, gaining hands-on experience with real-world projects and industry practices.",
		Technologies: []string{"Web Development", "Full-Stack", "JavaScript", "Python"},
		Type:         models.EntryTypeEducation,
	},
	{
		Title:        "Bachelor of Science in Computer Science",
		Company:      "Cairo Higher Institute",
		Location:     "Cairo, Egypt",
		Period:       "2020 - 2025",
		Description:  "Completed a Bachelor's degree in Computer Science, focusing on software engineering, algorithms, data structures, and web development.",
		Technologies: []string{"Computer Science", "Software Engineering", "Algorithms", "Data Structures"},
		Type:         models.EntryTypeEducation,
	},
}

const placeholderImage = "/placeholder.svg?height=600&width=800"

var projects = []models.Project{
	{
		ID:              1,
		Title:           "TileGreen Web",
		Description:     "Official website for an Egyptian startup transforming plastic waste into sustainable building materials",
		Image:           placeholderImage,
		LongDescription: "Developed TileGreen's official website, a pioneering Egyptian startup specializing in transforming plastic waste into sustainable, carbon-negative building materials. The site showcases the company's innovative technology that converts non-recyclable plastics into over 40 eco-friendly construction products, including interlocking tiles, bricks, and urban furniture.",
		Tags:            []string{"Angular", "Node.js", "Express", "MongoDB", "Responsive Design"},
		LiveLink:        "https://tilegreen.org/",
		GithubLink:      "https://github.com/username/tilegreen",
		Features: []string{
			"Responsive design across all devices",
			"Product showcase with detailed information",
			"Company mission and vision presentation",
			"Environmental impact statistics",
			"Contact and inquiry system",
			"Interactive product gallery",
		},
	},
	{
		ID:              2,
		Title:           "X-Translator App",
		Description:     "Localization and payment integration platform supporting multiple languages and regions",
		Image:           placeholderImage,
		LongDescription: "Developed a comprehensive localization platform that supports multiple languages and regions. Integrated Lemon Squeezy for streamlined and secure payment processing, adhering to global standards. Implemented rate-limiting features to protect the application from abuse and maintain high performance under load.",
		Tags:            []string{"Angular", "Node.js", "Express", "MongoDB", "Payment Integration"},
		LiveLink:        "https://xtranslator.app/",
		GithubLink:      "https://github.com/username/xtranslator",
		Features: []string{
			"Multi-language support",
			"Region-specific content adaptation",
			"Secure payment processing with Lemon Squeezy",
			"Rate-limiting for application protection",
			"User authentication and profiles",
			"Translation management dashboard",
		},
	},
	{
		ID:              3,
		Title:           "E-Commerce Platform",
		Description:     "Full-stack e-commerce solution with product management, shopping cart, and order processing",
		Image:           placeholderImage,
		LongDescription: "Developed a full-stack e-commerce platform using Angular for the frontend and Express.js for the backend. The platform includes product management, shopping cart functionality, user authentication, and order processing, providing a seamless and responsive shopping experience for users. Integrated secure payment gateways and built a robust admin dashboard for managing inventory, orders, and user accounts.",
		Tags:            []string{"Angular", "Express.js", "Node.js", "MongoDB", "Payment Gateway"},
		LiveLink:        "https://soking.tech/home",
		GithubLink:      "https://github.com/username/ecommerce",
		Features: []string{
			"Product management and categorization",
			"Shopping cart functionality",
			"User authentication and profiles",
			"Order processing and tracking",
			"Secure payment gateway integration",
			"Admin dashboard for inventory management",
		},
	},
	{
		ID:              4,
		Title:           "Contact Management System",
		Description:     "RESTful API for managing contacts with real-time capabilities and secure data handling",
		Image:           placeholderImage,
		LongDescription: "Developed a robust RESTful API for managing contacts, featuring real-time capabilities and secure data handling. Implemented JWT-based authentication with secure password hashing using bcrypt. Integrated Socket.IO for real-time updates and notifications. Established a lock management system to prevent concurrent data modifications. Ensured data integrity through comprehensive validation rules. Optimized data retrieval with pagination support.",
		Tags:            []string{"Node.js", "Express", "MongoDB", "Socket.IO", "JWT"},
		LiveLink:        "https://project-demo.com",
		GithubLink:      "https://github.com/username/contact-management",
		Features: []string{
			"JWT-based authentication",
			"Secure password hashing with bcrypt",
			"Real-time updates with Socket.IO",
			"Lock management system",
			"Data validation and integrity",
			"Pagination for optimized data retrieval",
		},
	},
	{
		ID:              5,
		Title:           "X-Law Legal Management System",
		Description:     "Platform for lawyers to manage organizations, post legal news, and handle case-related tasks",
		Image:           placeholderImage,
		LongDescription: "Created a comprehensive platform for lawyers to manage their organizations, post legal news, and handle case-related tasks. The system includes features for employee management and purchase tracking, providing a complete solution for legal practice management.",
		Tags:            []string{"Angular", "Django", "PostgreSQL", "REST API", "Legal Tech"},
		LiveLink:        "https://project-demo.com",
		GithubLink:      "https://github.com/username/xlaw",
		Features: []string{
			"Organization management for law firms",
			"Legal news posting and management",
			"Case tracking and management",
			"Employee management system",
			"Purchase and expense tracking",
			"Document management and storage",
		},
	},
	{
		ID:              6,
		Title:           "Supermarket Management System",
		Description:     "Backend system for managing supermarket operations using Django and Django REST Framework",
		Image:           placeholderImage,
		LongDescription: "Created a backend system for managing supermarket operations using Django and Django REST Framework (DRF). The system includes comprehensive inventory management, order processing, and user management features, providing a complete solution for supermarket operations.",
		Tags:            []string{"Django", "Django REST Framework", "PostgreSQL", "Python", "Backend"},
		LiveLink:        "https://project-demo.com",
		GithubLink:      "https://github.com/username/supermarket",
		Features: []string{
			"Inventory management and tracking",
			"Order processing and fulfillment",
			"User management and authentication",
			"Supplier management",
			"Sales reporting and analytics",
			"Product categorization and search",
		},
	},
}

var techStack = []models.TechItem{
	{Name: "Angular", Icon: "🅰️", Experience: 3, Category: models.TechCategoryFrontend},
	{Name: "TypeScript", Icon: "TS", Experience: 3, Category: models.TechCategoryFrontend},
	{Name: "JavaScript", Icon: "JS", Experience: 3, Category: models.TechCategoryFrontend},
	{Name: "HTML5", Icon: "🌐", Experience: 3, Category: models.TechCategoryFrontend},
	{Name: "Tailwind", Icon: "🎨", Experience: 3, Category: models.TechCategoryFrontend},
	{Name: "Node.js", Icon: "🟢", Experience: 3, Category: models.TechCategoryBackend},
	{Name: "Express", Icon: "🚂", Experience: 3, Category: models.TechCategoryBackend},
	{Name: "Django", Icon: "🐍", Experience: 1, Category: models.TechCategoryBackend},
	{Name: "MongoDB", Icon: "🍃", Experience: 3, Category: models.TechCategoryBackend},
	{Name: "Lua", Icon: "🌙", Experience: 4, Category: models.TechCategoryBackend},
	{Name: "Docker", Icon: "🐳", Experience: 2, Category: models.TechCategoryDevOps},
	{Name: "Git", Icon: "🔄", Experience: 3, Category: models.TechCategoryDevOps},
	{Name: "RESTful APIs", Icon: "🔌", Experience: 3, Category: models.TechCategoryTools},
	{Name: "JWT", Icon: "🔑", Experience: 2, Category: models.TechCategoryTools},
	{Name: "Socket.IO", Icon: "🔄", Experience: 0.5, Category: models.TechCategoryTools},
	{Name: "Payment Integration", Icon: "💳", Experience: 0.5, Category: models.TechCategoryTools},
	{Name: "Localization", Icon: "🌍", Experience: 2, Category: models.TechCategoryTools},
}

const avatarImage = "/placeholder.svg?height=100&width=100"

var testimonials = []models.Testimonial{
	{
		Name:    "Sarah Johnson",
		Role:    "CTO",
		Company: "TechStart Inc.",
		Image:   avatarImage,
		Quote:   "Youseef delivered an exceptional e-commerce platform that exceeded our expectations. His attention to detail and problem-solving abilities are truly impressive.",
		Rating:  5,
	},
	{
		Name:    "Michael Chen",
		Role:    "Product Manager",
		Company: "InnovateNow",
		Image:   avatarImage,
		Quote:   "Working with Youseef was a pleasure. He transformed our complex requirements into an intuitive and user-friendly application that our customers love.",
		Rating:  5,
	},
	{
		Name:    "Emily Rodriguez",
		Role:    "Founder",
		Company: "HealthTech Solutions",
		Image:   avatarImage,
		Quote:   "Youseef's expertise in both frontend and backend development was crucial to our project's success. He built a scalable solution that continues to perform flawlessly.",
		Rating:  4,
	},
	{
		Name:    "David Kim",
		Role:    "Marketing Director",
		Company: "Global Reach",
		Image:   avatarImage,
		Quote:   "Our website traffic increased by 70% after Youseef optimized our platform for performance and SEO. His technical knowledge combined with business understanding is rare.",
		Rating:  5,
	},
}

var faqs = []models.FAQ{
	{
		Question: "What services do you offer?",
		Answer:   "I offer full-stack web development services including frontend and backend development, responsive design, API development, database design, and more. I specialize in Angular, React, Node.js, and Django, but can adapt to various tech stacks based on project requirements.",
	},
	{
		Question: "How do you handle project pricing?",
		Answer:   "Project pricing depends on the scope, complexity, and timeline. I offer flexible engagement models including fixed price for well-defined projects, hourly rates for ongoing work, and retainer arrangements for long-term collaboration. Contact me with your requirements for a custom quote.",
	},
	{
		Question: "What is your development process?",
		Answer:   "My development process typically includes discovery and requirements gathering, planning and architecture, development sprints with regular checkpoints, testing and quality assurance, deployment, and post-launch support. I maintain clear communication throughout the process and adapt to your preferred project management approach.",
	},
	{
		Question: "Do you provide ongoing maintenance?",
		Answer:   "Yes, I offer ongoing maintenance and support services to ensure your application remains secure, performant, and up-to-date. This can include bug fixes, feature updates, security patches, and performance optimizations.",
	},
}

// HeroPhrases are cycled by the typed-text banner
var HeroPhrases = []string{
	"stunning web applications",
	"scalable backend systems",
	"beautiful user interfaces",
	"high-performance APIs",
	"robust full-stack solutions",
}
