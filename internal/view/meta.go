// Package view holds presentation data shared by handlers: page metadata
// for the static marketing pages and the view-model passed to templates.
package view

// PageMeta is the SEO head block and heading for one rendered page.
type PageMeta struct {
	ActivePage    string
	Title         string
	Description   string
	Keywords      string
	H1            string
	HideDefaultH1 bool
	CanonicalPath string
	TemplateName  string
}

// staticPages maps route paths to their fixed metadata. Slug-driven pages
// (solution and portfolio details) build their metadata from the record.
var staticPages = map[string]PageMeta{
	"/": {
		ActivePage:   "index",
		Title:        "Нанять Full-stack разработчика в СПб - Сайты под ключ",
		Description:  "Full-stack разработка сайтов на Python/JS в СПб. Индивидуально, быстро, с поддержкой. Создам решение для вашего бизнеса!",
		Keywords:     "нанять разработчика СПб, фрилансер веб, заказать сайт, создание сайта под ключ, Python JS, малый бизнес, стартап, быстро, качественно, поддержка, индивидуальный подход",
		H1:           "Full-stack разработчик сайтов в Санкт-Петербурге",
		TemplateName: "index.html",
	},
	"/uslugi": {
		ActivePage:   "services",
		Title:        "Создание сайтов на Python и JS в СПб - Full-stack под ключ",
		Description:  "Профессиональная разработка сайтов на Python и JavaScript в Санкт-Петербурге. От идеи до запуска. Индивидуальный подход, гарантия.",
		Keywords:     "веб-студия альтернатива, заказать сайт недорого, сайт для бизнеса СПб, лендинг, интернет-магазин, визитка, запуск сайта, Django/Flask, фронтенд, бэкенд",
		H1:           "Создание сайтов на Python и JS в СПб",
		TemplateName: "services.html",
	},
	"/uslugi/internet-magazin": {
		ActivePage:   "services",
		Title:        "Интернет-магазин на Python в СПб - Full-stack разработка под ключ",
		Description:  "Разработка интернет-магазинов на Python (Flask) и JS в Санкт-Петербурге. Каталог, корзина, оплата, админка. Под ключ.",
		Keywords:     "онлайн магазин, e-commerce, продажи через сайт, товары, платежные системы, CMS, интеграция 1С, SEO база",
		H1:           "Создание интернет-магазина на Python в СПб",
		TemplateName: "ecommerce.html",
	},
	"/uslugi/mvp-dlya-startapa": {
		ActivePage:   "services",
		Title:        "Создание MVP для стартапа в СПб - Быстро и экономно на Python",
		Description:  "Запустите MVP вашего стартапа быстро и в рамках бюджета! Full-stack разработка на Python/JS в Санкт-Петербурге. Фокус на вашу бизнес-идею.",
		Keywords:     "минимальный продукт, прототип сайта, запуск стартапа, привлечь инвесторов, быстрая реализация, низкий бюджет, Python Flask, бизнес-модель",
		H1:           "Разработка MVP для стартапа в СПб",
		TemplateName: "mvp.html",
	},
	"/uslugi/sozdanie-lendinga": {
		ActivePage:   "services",
		Title:        "Создание лендинга у фрилансера в СПб - Быстро и эффективно",
		Description:  "Нужен продающий лендинг? Фрилансер в СПб создаст адаптивный одностраничник на HTML/CSS/JS для вашего продукта или услуги.",
		Keywords:     "посадочная страница, landing page, продающий сайт, заказать лендинг недорого, конверсия, целевое действие, мобильная верстка, сроки",
		H1:           "Лендинг Пейдж от фрилансера в СПб",
		TemplateName: "landing.html",
	},
	"/uslugi/uskorenie-sajta": {
		ActivePage:   "services",
		Title:        "Ускорение сайта в СПб - Оптимизация скорости загрузки",
		Description:  "Ваш сайт медленно грузится? Профессиональная оптимизация скорости в Санкт-Петербурге. Улучшение Core Web Vitals, SEO.",
		Keywords:     "ускорить сайт, PageSpeed Insights, Lighthouse, время загрузки, кэширование, сжатие, CDN, мобильная скорость, SEO продвижение",
		H1:           "Оптимизация скорости сайта в СПб",
		TemplateName: "optimization.html",
	},
	"/resheniya": {
		ActivePage:   "solutions",
		Title:        "Магазин готовых решений для сайтов | СПб",
		Description:  "Готовые пакетные решения для бизнеса в Санкт-Петербурге. Сайты под ключ за 14 дней с гарантией.",
		H1:           "Магазин готовых решений для вашего бизнеса",
		TemplateName: "solutions.html",
	},
	"/portfolio": {
		ActivePage:   "portfolio",
		Title:        "Портфолио Full-stack разработчика - Реальные проекты (СПб)",
		Description:  "Примеры моих работ: сайты и веб-приложения на Python/JS, созданные для клиентов из Санкт-Петербурга. Full-stack решения.",
		Keywords:     "примеры работ, кейсы, реализованные сайты, отзывы клиентов, GitHub, технологии, Flask, JavaScript, бизнес-задачи",
		H1:           "Мои проекты: Full-stack разработка в СПб",
		TemplateName: "portfolio.html",
	},
	"/o-mne": {
		ActivePage:   "about",
		Title:        "Веб разработчик | Евгения Фесик - Фрилансер в СПб",
		Description:  "full-stack web разработчик из Санкт-Петербурга. Создание сайтов и веб-приложений",
		Keywords:     "full-stack разработчик, Python разработчик, Flask, JavaScript, создание сайтов, веб-приложения, Санкт-Петербург, фриланс",
		H1:           "Отзывы о моей работе в СПб",
		TemplateName: "about.html",
	},
	"/kontakty": {
		ActivePage:   "contacts",
		Title:        "Python разработчик фрилансер в СПб - Нанять для вашего проекта",
		Description:  "Ищете надежного Python-разработчика (Flask) фрилансера в Санкт-Петербурге? Индивидуальный подход, встречи, договор.",
		Keywords:     "найти программиста Python, заказать backend, фриланс исполнитель, частный разработчик, консультация, встречи в СПб, стоимость услуг",
		H1:           "Python фрилансер в Санкт-Петербурге",
		TemplateName: "contacts.html",
	},
	"/stoimost": {
		ActivePage:   "pricing",
		Title:        "Стоимость сайта под ключ в СПб - Прозрачное ценообразование",
		Description:  "Узнайте примерную стоимость разработки сайта под ключ в Санкт-Петербурге. От чего зависит цена? Индивидуальный расчет.",
		Keywords:     "цена сайта, бюджет разработки, расчет стоимости, этапы оплаты, экономия, типы сайтов (лендинг, магазин), гарантии, ТЗ",
		H1:           "Сколько стоит создать сайт в СПб?",
		TemplateName: "pricing.html",
	},
	"/blog/kak-vybrat-frilansera-dlya-sajta-v-spb": {
		ActivePage:   "blog",
		Title:        "Как выбрать фрилансера для сайта в СПб: 7 ключевых критериев",
		Description:  "Пошаговое руководство по выбору надежного фрилансера для создания сайта в Санкт-Петербурге. На что обратить внимание при подборе исполнителя.",
		Keywords:     "выбор фрилансера, нанять разработчика СПб, критерии выбора, портфолио, отзывы, договор, этапы оплаты, техническое задание",
		H1:           "Как выбрать фрилансера для создания сайта в СПб",
		TemplateName: "blog_choose_freelancer.html",
	},
	"/privacy": {
		ActivePage:    "privacy",
		Title:         "Политика конфиденциальности | Full-stack разработчик",
		Description:   "Как мы собираем, используем и защищаем вашу информацию",
		HideDefaultH1: true,
		TemplateName:  "privacy.html",
	},
	"/sitemap": {
		ActivePage:    "sitemap",
		Title:         "Карта сайта | Full-stack разработчик",
		Description:   "Полный список страниц на сайте",
		HideDefaultH1: true,
		TemplateName:  "sitemap.html",
	},
}

// notFoundMeta is the 404 page metadata.
var notFoundMeta = PageMeta{
	ActivePage:    "404",
	Title:         "404 - Страница не найдена | Full-stack разработчик",
	Description:   "Запрашиваемая страница не найдена. Вернитесь на главную или ознакомьтесь с моими услугами по разработке сайтов под ключ.",
	HideDefaultH1: true,
	TemplateName:  "404.html",
}

// StaticPage returns the metadata for a fixed route path.
func StaticPage(path string) (PageMeta, bool) {
	meta, ok := staticPages[path]
	if ok {
		meta.CanonicalPath = path
	}
	return meta, ok
}

// StaticPaths lists the fixed route paths with metadata, for sitemap
// assembly.
func StaticPaths() []string {
	return []string{
		"/", "/uslugi", "/uslugi/internet-magazin", "/uslugi/mvp-dlya-startapa",
		"/uslugi/sozdanie-lendinga", "/uslugi/uskorenie-sajta", "/resheniya",
		"/portfolio", "/o-mne", "/kontakty", "/stoimost",
		"/blog/kak-vybrat-frilansera-dlya-sajta-v-spb", "/privacy",
	}
}

// NotFound returns the 404 page metadata.
func NotFound() PageMeta {
	return notFoundMeta
}
