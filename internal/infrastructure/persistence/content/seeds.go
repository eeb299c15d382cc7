package content

import (
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// Seed factories build each area's zero-state document from bundled template
// copy. They are pure: the repository assigns ids and slugs and persists.

func seedProjects() *store.Document[*content.Project, content.SectionSettings] {
	return &store.Document[*content.Project, content.SectionSettings]{
		Settings: &content.SectionSettings{
			PageTitle: content.Localized{En: "Our Projects", Ar: "مشاريعنا"},
			Intro: content.Localized{
				En: "A selection of landmark projects delivered across the region.",
				Ar: "مجموعة مختارة من المشاريع البارزة المنجزة في المنطقة.",
			},
			MetaDescription: content.Localized{
				En: "Portfolio of completed and ongoing construction projects.",
				Ar: "سجل المشاريع الإنشائية المنجزة والجارية.",
			},
		},
		Items: []*content.Project{
			{
				Title:       content.Localized{En: "Al-Hamra Tower", Ar: "برج الحمراء"},
				Summary:     content.Localized{En: "Structural works for Kuwait's tallest tower.", Ar: "الأعمال الإنشائية لأطول برج في الكويت."},
				Description: content.Localized{En: "Full structural package including the sculpted concrete core and post-tensioned flat slabs.", Ar: "الحزمة الإنشائية الكاملة بما في ذلك النواة الخرسانية المنحوتة والبلاطات المسبقة الإجهاد."},
				Category:    content.Localized{En: "Commercial", Ar: "تجاري"},
				Location:    content.Localized{En: "Kuwait City", Ar: "مدينة الكويت"},
				Year:        2011,
				Published:   true,
				Base:        content.Base{SortOrder: 1},
			},
			{
				Title:       content.Localized{En: "Sabah Al-Ahmad Sea City", Ar: "مدينة صباح الأحمد البحرية"},
				Summary:     content.Localized{En: "Marine infrastructure and waterfront villas.", Ar: "البنية التحتية البحرية وفلل الواجهة البحرية."},
				Description: content.Localized{En: "Dredging, quay walls and finishing works across three residential phases.", Ar: "أعمال الحفر البحري وجدران الأرصفة والتشطيبات عبر ثلاث مراحل سكنية."},
				Category:    content.Localized{En: "Residential", Ar: "سكني"},
				Location:    content.Localized{En: "Khiran", Ar: "الخيران"},
				Year:        2016,
				Published:   true,
				Base:        content.Base{SortOrder: 2},
			},
			{
				Title:       content.Localized{En: "Jaber Hospital Extension", Ar: "توسعة مستشفى جابر"},
				Summary:     content.Localized{En: "Design-build extension of the surgical wing.", Ar: "توسعة جناح الجراحة بنظام التصميم والتنفيذ."},
				Description: content.Localized{En: "Turnkey delivery of twelve operating theatres with dedicated MEP plant.", Ar: "تسليم مفتاح لاثنتي عشرة غرفة عمليات مع أنظمة كهروميكانيكية مستقلة."},
				Category:    content.Localized{En: "Healthcare", Ar: "رعاية صحية"},
				Location:    content.Localized{En: "South Surra", Ar: "جنوب السرة"},
				Year:        2021,
				Published:   true,
				Base:        content.Base{SortOrder: 3},
			},
		},
	}
}

func seedNews() *store.Document[*content.NewsItem, content.SectionSettings] {
	return &store.Document[*content.NewsItem, content.SectionSettings]{
		Settings: &content.SectionSettings{
			PageTitle: content.Localized{En: "News", Ar: "الأخبار"},
			Intro:     content.Localized{En: "Company announcements and press coverage.", Ar: "إعلانات الشركة والتغطية الصحفية."},
		},
		Items: []*content.NewsItem{
			{
				Title:       content.Localized{En: "ACT awarded infrastructure package", Ar: "ترسية حزمة البنية التحتية على الشركة"},
				Excerpt:     content.Localized{En: "A new roads and utilities package in the northern corridor.", Ar: "حزمة جديدة للطرق والمرافق في المحور الشمالي."},
				Body:        content.Localized{En: "The Ministry of Public Works has awarded the company a major roads and utilities package.", Ar: "أرست وزارة الأشغال العامة على الشركة حزمة رئيسية للطرق والمرافق."},
				PublishedAt: "2024-03-10",
				Published:   true,
				Base:        content.Base{SortOrder: 1},
			},
			{
				Title:       content.Localized{En: "ISO 45001 recertification", Ar: "تجديد شهادة الأيزو 45001"},
				Excerpt:     content.Localized{En: "Occupational health and safety system recertified.", Ar: "تجديد اعتماد نظام الصحة والسلامة المهنية."},
				Body:        content.Localized{En: "Our HSE management system passed recertification with zero non-conformities.", Ar: "اجتاز نظام إدارة الصحة والسلامة والبيئة التدقيق دون أي حالات عدم مطابقة."},
				PublishedAt: "2024-01-22",
				Published:   true,
				Base:        content.Base{SortOrder: 2},
			},
		},
	}
}

func seedBlog() *store.Document[*content.BlogPost, content.SectionSettings] {
	return &store.Document[*content.BlogPost, content.SectionSettings]{
		Settings: &content.SectionSettings{
			PageTitle: content.Localized{En: "Insights", Ar: "مقالات"},
			Intro:     content.Localized{En: "Engineering notes from our project teams.", Ar: "ملاحظات هندسية من فرق مشاريعنا."},
		},
		Items: []*content.BlogPost{
			{
				Title:       content.Localized{En: "Concreting in Gulf summers", Ar: "صب الخرسانة في صيف الخليج"},
				Excerpt:     content.Localized{En: "Managing mass pours above 45°C.", Ar: "إدارة الصبات الكبيرة فوق 45 درجة مئوية."},
				Body:        content.Localized{En: "Night pours, chilled aggregate and ice dosing keep core temperatures inside spec.", Ar: "الصب الليلي والركام المبرد وإضافة الثلج تحافظ على حرارة القلب ضمن المواصفات."},
				Author:      content.Localized{En: "Site Engineering Team", Ar: "فريق هندسة الموقع"},
				Tags:        []string{"concrete", "hse"},
				PublishedAt: "2024-05-02",
				Published:   true,
				Base:        content.Base{SortOrder: 1},
			},
		},
	}
}

func seedCareers() *store.Document[*content.Career, content.SectionSettings] {
	return &store.Document[*content.Career, content.SectionSettings]{
		Settings: &content.SectionSettings{
			PageTitle: content.Localized{En: "Careers", Ar: "الوظائف"},
			Intro:     content.Localized{En: "Join a team building the region's landmarks.", Ar: "انضم إلى فريق يبني معالم المنطقة."},
		},
		Items: []*content.Career{
			{
				Title:          content.Localized{En: "Senior Structural Engineer", Ar: "مهندس إنشائي أول"},
				Department:     content.Localized{En: "Engineering", Ar: "الهندسة"},
				Location:       content.Localized{En: "Kuwait City", Ar: "مدينة الكويت"},
				Description:    content.Localized{En: "Lead structural design reviews across active projects.", Ar: "قيادة مراجعات التصميم الإنشائي عبر المشاريع القائمة."},
				Requirements:   content.Localized{En: "10+ years in high-rise structural design.", Ar: "خبرة تزيد عن عشر سنوات في التصميم الإنشائي للأبراج."},
				EmploymentType: "full-time",
				Open:           true,
				Base:           content.Base{SortOrder: 1},
			},
			{
				Title:          content.Localized{En: "QA/QC Inspector", Ar: "مفتش ضبط جودة"},
				Department:     content.Localized{En: "Quality", Ar: "الجودة"},
				Location:       content.Localized{En: "Khiran", Ar: "الخيران"},
				Description:    content.Localized{En: "Inspect marine and concrete works against ITPs.", Ar: "تفتيش الأعمال البحرية والخرسانية وفق خطط الفحص والاختبار."},
				Requirements:   content.Localized{En: "CSWIP or equivalent certification preferred.", Ar: "يفضل شهادة CSWIP أو ما يعادلها."},
				EmploymentType: "full-time",
				Open:           true,
				Base:           content.Base{SortOrder: 2},
			},
		},
	}
}

func seedMedia() *store.Document[*content.MediaItem, content.SectionSettings] {
	return &store.Document[*content.MediaItem, content.SectionSettings]{
		Settings: &content.SectionSettings{
			PageTitle: content.Localized{En: "Media Gallery", Ar: "معرض الوسائط"},
			Intro:     content.Localized{En: "Photos and videos from our sites.", Ar: "صور وفيديوهات من مواقعنا."},
		},
		Items: []*content.MediaItem{
			{
				Title:     content.Localized{En: "Tower core climbing formwork", Ar: "قوالب التسلق لنواة البرج"},
				Caption:   content.Localized{En: "Self-climbing formwork at level 60.", Ar: "قوالب ذاتية التسلق عند الطابق الستين."},
				Kind:      "image",
				Published: true,
				Base:      content.Base{SortOrder: 1},
			},
			{
				Title:       content.Localized{En: "Sea city flythrough", Ar: "جولة جوية في المدينة البحرية"},
				Caption:     content.Localized{En: "Aerial tour of phase three.", Ar: "جولة جوية في المرحلة الثالثة."},
				Kind:        "video",
				ExternalURL: "https://www.youtube.com/watch?v=act-sea-city",
				Published:   true,
				Base:        content.Base{SortOrder: 2},
			},
		},
	}
}

func seedClients() *store.Document[*content.Client, content.SectionSettings] {
	return &store.Document[*content.Client, content.SectionSettings]{
		Settings: &content.SectionSettings{
			PageTitle: content.Localized{En: "Our Clients", Ar: "عملاؤنا"},
			Intro:     content.Localized{En: "Public and private sector partners.", Ar: "شركاء من القطاعين العام والخاص."},
		},
		Items: []*content.Client{
			{
				Name:       content.Localized{En: "Ministry of Public Works", Ar: "وزارة الأشغال العامة"},
				Sector:     content.Localized{En: "Government", Ar: "حكومي"},
				ShowInMenu: true,
				Base:       content.Base{SortOrder: 1},
			},
			{
				Name:       content.Localized{En: "Kuwait Oil Company", Ar: "شركة نفط الكويت"},
				Sector:     content.Localized{En: "Oil & Gas", Ar: "النفط والغاز"},
				ShowInMenu: true,
				Base:       content.Base{SortOrder: 2},
			},
			{
				Name:       content.Localized{En: "Public Authority for Housing Welfare", Ar: "المؤسسة العامة للرعاية السكنية"},
				Sector:     content.Localized{En: "Government", Ar: "حكومي"},
				ShowInMenu: false,
				Base:       content.Base{SortOrder: 3},
			},
		},
	}
}

func seedPages() *store.Document[*content.Page, content.SiteSettings] {
	return &store.Document[*content.Page, content.SiteSettings]{
		Settings: &content.SiteSettings{
			SiteName:     content.Localized{En: "ACT General Trading & Contracting", Ar: "الشركة العربية للتجارة العامة والمقاولات"},
			Tagline:      content.Localized{En: "Building with confidence since 1978.", Ar: "نبني بثقة منذ عام 1978."},
			FooterText:   content.Localized{En: "All rights reserved.", Ar: "جميع الحقوق محفوظة."},
			Address:      content.Localized{En: "Shuwaikh Industrial, Kuwait", Ar: "الشويخ الصناعية، الكويت"},
			ContactEmail: "info@act.com.kw",
			ContactPhone: "+965 2481 0000",
		},
		Items: []*content.Page{
			{
				Title:        content.Localized{En: "Home", Ar: "الرئيسية"},
				HeroTitle:    content.Localized{En: "Engineering the skyline", Ar: "نهندس الأفق"},
				HeroSubtitle: content.Localized{En: "Four decades of delivery across the Gulf.", Ar: "أربعة عقود من الإنجاز في الخليج."},
				Body:         content.Localized{En: "From towers to sea cities, we deliver complex projects on time.", Ar: "من الأبراج إلى المدن البحرية، ننجز المشاريع المعقدة في موعدها."},
				ShowInMenu:   true,
				Base:         content.Base{SortOrder: 1},
			},
			{
				Title:      content.Localized{En: "About Us", Ar: "من نحن"},
				HeroTitle:  content.Localized{En: "Who we are", Ar: "من نحن"},
				Body:       content.Localized{En: "A grade-one contractor with in-house engineering, plant and marine divisions.", Ar: "مقاول درجة أولى بأقسام داخلية للهندسة والمعدات والأعمال البحرية."},
				ShowInMenu: true,
				Base:       content.Base{SortOrder: 2},
			},
			{
				Title:      content.Localized{En: "Contact", Ar: "اتصل بنا"},
				HeroTitle:  content.Localized{En: "Get in touch", Ar: "تواصل معنا"},
				Body:       content.Localized{En: "Our team responds within one business day.", Ar: "يرد فريقنا خلال يوم عمل واحد."},
				ShowInMenu: true,
				Base:       content.Base{SortOrder: 3},
			},
		},
	}
}
