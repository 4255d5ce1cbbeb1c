package locale

import lang "portfolio-assistant/internal/language"

var phrasebooks = map[lang.Code]*phrasebook{
	lang.English: {
		welcome:   "👋 Hi! I'm Anmol's AI Assistant. I can tell you about his projects, skills, experience, and achievements. What would you like to know?",
		notice:    "⚠️ Note: AI assistant is currently using offline mode due to API connectivity issues.",
		directive: "You are Anmol's AI portfolio assistant. Respond in English with clear formatting.",
		quickReplies: [4]QuickReply{
			{"Tell me about Anmol's AI projects", "Ask about AI/ML projects"},
			{"What are his technical skills?", "Ask about programming skills"},
			{"How can I contact him?", "Ask for contact information"},
			{"What's his experience?", "Ask about work experience"},
		},
		ui: UI{
			ChatTitle:   "Anmol's AI Assistant",
			Placeholder: "Ask me about Anmol's projects, skills, or experience...",
			Send:        "Send",
			Clear:       "Clear",
			Retry:       "Retry",
			Typing:      "AI is typing...",
			Error:       "Error occurred",
			Offline:     "Offline mode",
			Language:    "Language",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "Configuration Error: API key not found. Using offline mode.",
			FailureAuthentication: "Authentication Error: Invalid API key. Using offline mode.",
			FailureRateLimit:      "Rate Limit Error: Too many requests. Using offline mode.",
			FailureNetwork:        "Network Error: Unable to connect to AI service. Using offline mode.",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"project", "portfolio", "ai", "ml"},
			TopicSkills:   {"skill", "technology", "tech", "stack"},
			TopicContact:  {"contact", "reach", "email", "phone", "linkedin"},
		},

		projectsIntro: "I'd love to tell you about my AI/ML projects!",
		projectsBuilt: "I've built several exciting applications:",
		projectItems: [5]string{
			"Crop recommendation using machine learning",
			"WhatsApp analytics with sentiment analysis",
			"AI coding assistant with teaching capabilities",
			"Mathematical problem solver using LangChain",
			"Resume analyzer with improvement suggestions",
		},
		projectsOutro: "Each project showcases different AI/ML technologies like NLP, machine learning, and deep learning.",

		skillsIntro:     "My core technical skills include:",
		programming:     "Programming Languages:",
		aiml:            "AI/ML Technologies:",
		machineLearning: "Machine Learning",
		deepLearning:    "Deep Learning",
		generativeAI:    "Generative AI",
		web:             "Web Development:",
		skillsOutro:     "I'm particularly passionate about AI/ML and full-stack development!",

		contactIntro: "You can contact me through several channels:",
		email:        "Email",
		phone:        "Phone",
		contactOutro: "I'm always open to discussing new opportunities and exciting projects!",

		greeting: "Hi! I'm Anmol's AI Assistant.",
		canTell:  "I can tell you about:",
		offers: [4]string{
			"His AI/ML projects and technical skills",
			"Professional experience and education",
			"Contact information and achievements",
			"Web development and data science expertise",
		},
		question: "What would you like to know about my work and experience?",
	},

	lang.Spanish: {
		welcome:   "👋 ¡Hola! Soy el Asistente de IA de Anmol. Puedo contarte sobre sus proyectos, habilidades, experiencia y logros. ¿Qué te gustaría saber?",
		notice:    "⚠️ Nota: el asistente de IA está usando el modo sin conexión debido a problemas de conectividad con la API.",
		directive: "Eres el asistente de IA del portafolio de Anmol. Responde en español con formato claro.",
		quickReplies: [4]QuickReply{
			{"Cuéntame sobre los proyectos de IA de Anmol", "Pregunta sobre proyectos de IA/ML"},
			{"¿Cuáles son sus habilidades técnicas?", "Pregunta sobre habilidades de programación"},
			{"¿Cómo puedo contactarlo?", "Pregunta por información de contacto"},
			{"¿Cuál es su experiencia?", "Pregunta sobre experiencia laboral"},
		},
		ui: UI{
			ChatTitle:   "Asistente IA",
			Placeholder: "Pregúntame sobre los proyectos, habilidades o experiencia de Anmol...",
			Send:        "Enviar",
			Clear:       "Limpiar",
			Retry:       "Reintentar",
			Typing:      "La IA está escribiendo...",
			Error:       "Error ocurrido",
			Offline:     "Modo sin conexión",
			Language:    "Idioma",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "Error de configuración: no se encontró la clave de API. Usando el modo sin conexión.",
			FailureAuthentication: "Error de autenticación: clave de API no válida. Usando el modo sin conexión.",
			FailureRateLimit:      "Límite de solicitudes: demasiadas solicitudes. Usando el modo sin conexión.",
			FailureNetwork:        "Error de red: no se pudo conectar con el servicio de IA. Usando el modo sin conexión.",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"proyecto", "ia"},
			TopicSkills:   {"habilidad", "tecnolog", "conocimiento"},
			TopicContact:  {"contacto", "contactar", "correo", "teléfono"},
		},

		projectsIntro: "¡Me encantaría contarte sobre mis proyectos de IA/ML!",
		projectsBuilt: "He construido varias aplicaciones emocionantes:",
		projectItems: [5]string{
			"Recomendación de cultivos usando machine learning",
			"Análisis de WhatsApp con análisis de sentimientos",
			"Asistente de código con IA con capacidades de enseñanza",
			"Solucionador de problemas matemáticos usando LangChain",
			"Analizador de currículos con sugerencias de mejora",
		},
		projectsOutro: "Cada proyecto muestra diferentes tecnologías de IA/ML como NLP, machine learning y deep learning.",

		skillsIntro:     "Mis habilidades técnicas principales incluyen:",
		programming:     "Lenguajes de Programación:",
		aiml:            "Tecnologías de IA/ML:",
		machineLearning: "Machine Learning",
		deepLearning:    "Deep Learning",
		generativeAI:    "IA Generativa",
		web:             "Desarrollo Web:",
		skillsOutro:     "¡Soy particularmente apasionado por IA/ML y desarrollo full-stack!",

		contactIntro: "Puedes contactarme a través de varios canales:",
		email:        "Email",
		phone:        "Teléfono",
		contactOutro: "¡Siempre estoy abierto a discutir nuevas oportunidades y proyectos emocionantes!",

		greeting: "¡Hola! Soy el Asistente de IA de Anmol.",
		canTell:  "Puedo contarte sobre:",
		offers: [4]string{
			"Sus proyectos de IA/ML y habilidades técnicas",
			"Experiencia profesional y educación",
			"Información de contacto y logros",
			"Desarrollo web y experiencia en ciencia de datos",
		},
		question: "¿Qué te gustaría saber sobre mi trabajo y experiencia?",
	},

	lang.French: {
		welcome:   "👋 Salut! Je suis l'Assistant IA d'Anmol. Je peux vous parler de ses projets, compétences, expérience et réalisations. Que souhaitez-vous savoir?",
		notice:    "⚠️ Remarque : l'assistant IA fonctionne actuellement en mode hors ligne en raison de problèmes de connexion à l'API.",
		directive: "Vous êtes l'assistant IA du portfolio d'Anmol. Répondez en français avec un formatage clair.",
		quickReplies: [4]QuickReply{
			{"Parlez-moi des projets IA d'Anmol", "Demandez à propos des projets IA/ML"},
			{"Quelles sont ses compétences techniques?", "Demandez à propos des compétences de programmation"},
			{"Comment puis-je le contacter?", "Demandez les informations de contact"},
			{"Quelle est son expérience?", "Demandez à propos de l'expérience professionnelle"},
		},
		ui: UI{
			ChatTitle:   "Assistant IA",
			Placeholder: "Demandez-moi à propos des projets, compétences ou expérience d'Anmol...",
			Send:        "Envoyer",
			Clear:       "Effacer",
			Retry:       "Réessayer",
			Typing:      "L'IA tape...",
			Error:       "Erreur survenue",
			Offline:     "Mode hors ligne",
			Language:    "Langue",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "Erreur de configuration : clé d'API introuvable. Mode hors ligne activé.",
			FailureAuthentication: "Erreur d'authentification : clé d'API invalide. Mode hors ligne activé.",
			FailureRateLimit:      "Limite de requêtes atteinte : trop de requêtes. Mode hors ligne activé.",
			FailureNetwork:        "Erreur réseau : impossible de joindre le service IA. Mode hors ligne activé.",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"projet", "ia"},
			TopicSkills:   {"compétence", "technolog", "technique"},
			TopicContact:  {"contact", "joindre", "courriel", "téléphone"},
		},

		projectsIntro: "Je serais ravi de vous parler de mes projets IA/ML !",
		projectsBuilt: "J'ai créé plusieurs applications passionnantes :",
		projectItems: [5]string{
			"Recommandation de cultures par machine learning",
			"Analyse de conversations WhatsApp avec analyse de sentiments",
			"Assistant de code IA avec des capacités pédagogiques",
			"Résolution de problèmes mathématiques avec LangChain",
			"Analyseur de CV avec suggestions d'amélioration",
		},
		projectsOutro: "Chaque projet met en valeur différentes technologies IA/ML comme le NLP, le machine learning et le deep learning.",

		skillsIntro:     "Mes principales compétences techniques :",
		programming:     "Langages de programmation :",
		aiml:            "Technologies IA/ML :",
		machineLearning: "Machine Learning",
		deepLearning:    "Deep Learning",
		generativeAI:    "IA générative",
		web:             "Développement web :",
		skillsOutro:     "Je suis particulièrement passionné par l'IA/ML et le développement full-stack !",

		contactIntro: "Vous pouvez me contacter par plusieurs canaux :",
		email:        "E-mail",
		phone:        "Téléphone",
		contactOutro: "Je suis toujours ouvert aux nouvelles opportunités et aux projets passionnants !",

		greeting: "Bonjour ! Je suis l'Assistant IA d'Anmol.",
		canTell:  "Je peux vous parler de :",
		offers: [4]string{
			"Ses projets IA/ML et ses compétences techniques",
			"Son expérience professionnelle et sa formation",
			"Ses coordonnées et ses réalisations",
			"Son expertise en développement web et en data science",
		},
		question: "Que souhaitez-vous savoir sur mon travail et mon expérience ?",
	},

	lang.German: {
		welcome:   "👋 Hallo! Ich bin Anmols KI-Assistent. Ich kann Ihnen über seine Projekte, Fähigkeiten, Erfahrungen und Erfolge erzählen. Was möchten Sie wissen?",
		notice:    "⚠️ Hinweis: Der KI-Assistent läuft aufgrund von API-Verbindungsproblemen derzeit im Offline-Modus.",
		directive: "Sie sind Anmols KI-Portfolio-Assistent. Antworten Sie auf Deutsch mit klarer Formatierung.",
		quickReplies: [4]QuickReply{
			{"Erzählen Sie von Anmols KI-Projekten", "Fragen Sie nach KI/ML-Projekten"},
			{"Was sind seine technischen Fähigkeiten?", "Fragen Sie nach Programmierfähigkeiten"},
			{"Wie kann ich ihn kontaktieren?", "Fragen Sie nach Kontaktinformationen"},
			{"Was ist seine Erfahrung?", "Fragen Sie nach Berufserfahrung"},
		},
		ui: UI{
			ChatTitle:   "KI-Assistent",
			Placeholder: "Fragen Sie mich über Anmols Projekte, Fähigkeiten oder Erfahrungen...",
			Send:        "Senden",
			Clear:       "Löschen",
			Retry:       "Wiederholen",
			Typing:      "KI tippt...",
			Error:       "Fehler aufgetreten",
			Offline:     "Offline-Modus",
			Language:    "Sprache",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "Konfigurationsfehler: API-Schlüssel nicht gefunden. Offline-Modus aktiv.",
			FailureAuthentication: "Authentifizierungsfehler: Ungültiger API-Schlüssel. Offline-Modus aktiv.",
			FailureRateLimit:      "Anfragelimit erreicht: Zu viele Anfragen. Offline-Modus aktiv.",
			FailureNetwork:        "Netzwerkfehler: KI-Dienst nicht erreichbar. Offline-Modus aktiv.",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"projekt", "ki"},
			TopicSkills:   {"fähigkeit", "kenntnis", "technolog"},
			TopicContact:  {"kontakt", "erreichen", "e-mail", "telefon"},
		},

		projectsIntro: "Gerne erzähle ich Ihnen von meinen KI/ML-Projekten!",
		projectsBuilt: "Ich habe mehrere spannende Anwendungen entwickelt:",
		projectItems: [5]string{
			"Pflanzenempfehlung mit Machine Learning",
			"WhatsApp-Analyse mit Sentimentanalyse",
			"KI-Coding-Assistent mit Lehrfunktionen",
			"Mathematischer Problemlöser mit LangChain",
			"Lebenslauf-Analyse mit Verbesserungsvorschlägen",
		},
		projectsOutro: "Jedes Projekt zeigt unterschiedliche KI/ML-Technologien wie NLP, Machine Learning und Deep Learning.",

		skillsIntro:     "Zu meinen wichtigsten technischen Fähigkeiten gehören:",
		programming:     "Programmiersprachen:",
		aiml:            "KI/ML-Technologien:",
		machineLearning: "Machine Learning",
		deepLearning:    "Deep Learning",
		generativeAI:    "Generative KI",
		web:             "Webentwicklung:",
		skillsOutro:     "Besonders begeistere ich mich für KI/ML und Full-Stack-Entwicklung!",

		contactIntro: "Sie können mich über mehrere Kanäle erreichen:",
		email:        "E-Mail",
		phone:        "Telefon",
		contactOutro: "Ich bin immer offen für neue Möglichkeiten und spannende Projekte!",

		greeting: "Hallo! Ich bin Anmols KI-Assistent.",
		canTell:  "Ich kann Ihnen erzählen über:",
		offers: [4]string{
			"Seine KI/ML-Projekte und technischen Fähigkeiten",
			"Berufserfahrung und Ausbildung",
			"Kontaktdaten und Erfolge",
			"Expertise in Webentwicklung und Data Science",
		},
		question: "Was möchten Sie über meine Arbeit und Erfahrung wissen?",
	},

	lang.Hindi: {
		welcome:   "👋 नमस्ते! मैं अनमोल का AI असिस्टेंट हूं। मैं उनकी परियोजनाओं, कौशल, अनुभव और उपलब्धियों के बारे में बता सकता हूं। आप क्या जानना चाहेंगे?",
		notice:    "⚠️ नोट: API कनेक्टिविटी समस्याओं के कारण AI सहायक अभी ऑफ़लाइन मोड में है।",
		directive: "आप अनमोल के AI पोर्टफोलियो असिस्टेंट हैं। स्पष्ट फॉर्मेटिंग के साथ हिंदी में जवाब दें।",
		quickReplies: [4]QuickReply{
			{"अनमोल के AI प्रोजेक्ट्स के बारे में बताएं", "AI/ML प्रोजेक्ट्स के बारे में पूछें"},
			{"उनके तकनीकी कौशल क्या हैं?", "प्रोग्रामिंग कौशल के बारे में पूछें"},
			{"मैं उनसे कैसे संपर्क कर सकता हूं?", "संपर्क जानकारी के लिए पूछें"},
			{"उनका अनुभव क्या है?", "कार्य अनुभव के बारे में पूछें"},
		},
		ui: UI{
			ChatTitle:   "AI सहायक",
			Placeholder: "अनमोल की परियोजनाओं, कौशल या अनुभव के बारे में पूछें...",
			Send:        "भेजें",
			Clear:       "साफ़ करें",
			Retry:       "पुनः प्रयास",
			Typing:      "AI टाइप कर रहा है...",
			Error:       "त्रुटि हुई",
			Offline:     "ऑफ़लाइन मोड",
			Language:    "भाषा",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "कॉन्फ़िगरेशन त्रुटि: API कुंजी नहीं मिली। ऑफ़लाइन मोड का उपयोग हो रहा है।",
			FailureAuthentication: "प्रमाणीकरण त्रुटि: अमान्य API कुंजी। ऑफ़लाइन मोड का उपयोग हो रहा है।",
			FailureRateLimit:      "दर सीमा त्रुटि: बहुत अधिक अनुरोध। ऑफ़लाइन मोड का उपयोग हो रहा है।",
			FailureNetwork:        "नेटवर्क त्रुटि: AI सेवा से कनेक्ट नहीं हो सका। ऑफ़लाइन मोड का उपयोग हो रहा है।",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"प्रोजेक्ट", "परियोजना"},
			TopicSkills:   {"कौशल", "तकनीक"},
			TopicContact:  {"संपर्क", "ईमेल", "फोन"},
		},

		projectsIntro: "मुझे अपने AI/ML प्रोजेक्ट्स के बारे में बताने में खुशी होगी!",
		projectsBuilt: "मैंने कई रोमांचक एप्लिकेशन बनाए हैं:",
		projectItems: [5]string{
			"मशीन लर्निंग का उपयोग करके फसल सिफारिश",
			"भावना विश्लेषण के साथ WhatsApp एनालिटिक्स",
			"शिक्षण क्षमताओं के साथ AI कोडिंग असिस्टेंट",
			"LangChain का उपयोग करके गणितीय समस्या समाधानकर्ता",
			"सुधार सुझावों के साथ रिज्यूमे विश्लेषक",
		},
		projectsOutro: "हर प्रोजेक्ट NLP, मशीन लर्निंग और डीप लर्निंग जैसी विभिन्न AI/ML तकनीकों को प्रदर्शित करता है।",

		skillsIntro:     "मेरे मुख्य तकनीकी कौशल में शामिल हैं:",
		programming:     "प्रोग्रामिंग भाषाएं:",
		aiml:            "AI/ML तकनीकें:",
		machineLearning: "मशीन लर्निंग",
		deepLearning:    "डीप लर्निंग",
		generativeAI:    "जेनेरेटिव AI",
		web:             "वेब डेवलपमेंट:",
		skillsOutro:     "मैं विशेष रूप से AI/ML और फुल-स्टैक डेवलपमेंट के लिए उत्साहित हूं!",

		contactIntro: "आप कई चैनलों के माध्यम से मुझसे संपर्क कर सकते हैं:",
		email:        "ईमेल",
		phone:        "फोन",
		contactOutro: "मैं हमेशा नए अवसरों और रोमांचक परियोजनाओं पर चर्चा के लिए तैयार हूं!",

		greeting: "नमस्ते! मैं अनमोल का AI सहायक हूं।",
		canTell:  "मैं बता सकता हूं:",
		offers: [4]string{
			"उनके AI/ML प्रोजेक्ट्स और तकनीकी कौशल",
			"व्यावसायिक अनुभव और शिक्षा",
			"संपर्क जानकारी और उपलब्धियां",
			"वेब डेवलपमेंट और डेटा साइंस विशेषज्ञता",
		},
		question: "आप मेरे काम और अनुभव के बारे में क्या जानना चाहेंगे?",
	},

	lang.Japanese: {
		welcome:   "👋 こんにちは！AnmolのAIアシスタントです。彼のプロジェクト、スキル、経験、実績についてお答えします。何を知りたいですか？",
		notice:    "⚠️ 注意：API接続の問題により、AIアシスタントは現在オフラインモードで動作しています。",
		directive: "あなたはAnmolのAIポートフォリオアシスタントです。明確なフォーマットで日本語で応答してください。",
		quickReplies: [4]QuickReply{
			{"AnmolのAIプロジェクトについて教えて", "AI/MLプロジェクトについて聞く"},
			{"彼の技術スキルは何ですか？", "プログラミングスキルについて聞く"},
			{"どうやって連絡できますか？", "連絡先情報を聞く"},
			{"彼の経験は何ですか？", "職歴について聞く"},
		},
		ui: UI{
			ChatTitle:   "AIアシスタント",
			Placeholder: "Anmolのプロジェクト、スキル、経験について聞いてください...",
			Send:        "送信",
			Clear:       "クリア",
			Retry:       "再試行",
			Typing:      "AIが入力中...",
			Error:       "エラーが発生しました",
			Offline:     "オフラインモード",
			Language:    "言語",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "設定エラー：APIキーが見つかりません。オフラインモードを使用しています。",
			FailureAuthentication: "認証エラー：APIキーが無効です。オフラインモードを使用しています。",
			FailureRateLimit:      "レート制限エラー：リクエストが多すぎます。オフラインモードを使用しています。",
			FailureNetwork:        "ネットワークエラー：AIサービスに接続できません。オフラインモードを使用しています。",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"プロジェクト", "作品"},
			TopicSkills:   {"スキル", "技術"},
			TopicContact:  {"連絡", "メール", "電話"},
		},

		projectsIntro: "私のAI/MLプロジェクトについて喜んでご紹介します！",
		projectsBuilt: "これまでにいくつかのアプリケーションを開発しました：",
		projectItems: [5]string{
			"機械学習による作物推薦",
			"感情分析付きのWhatsApp分析",
			"教育機能を備えたAIコーディングアシスタント",
			"LangChainを使った数学問題ソルバー",
			"改善提案付きの履歴書アナライザー",
		},
		projectsOutro: "各プロジェクトでNLP、機械学習、深層学習などさまざまなAI/ML技術を活用しています。",

		skillsIntro:     "主な技術スキルは次のとおりです：",
		programming:     "プログラミング言語：",
		aiml:            "AI/ML技術：",
		machineLearning: "機械学習",
		deepLearning:    "深層学習",
		generativeAI:    "生成AI",
		web:             "Web開発：",
		skillsOutro:     "特にAI/MLとフルスタック開発に情熱を持っています！",

		contactIntro: "以下の方法で連絡できます：",
		email:        "メール",
		phone:        "電話",
		contactOutro: "新しい機会や面白いプロジェクトについて、いつでもお気軽にご相談ください！",

		greeting: "こんにちは！AnmolのAIアシスタントです。",
		canTell:  "次のことについてお話しできます：",
		offers: [4]string{
			"AI/MLプロジェクトと技術スキル",
			"職歴と学歴",
			"連絡先と実績",
			"Web開発とデータサイエンスの専門知識",
		},
		question: "私の仕事や経験について何を知りたいですか？",
	},

	lang.Korean: {
		welcome:   "👋 안녕하세요! Anmol의 AI 어시스턴트입니다. 그의 프로젝트, 기술, 경험, 성과에 대해 알려드릴 수 있어요. 무엇이 궁금하신가요?",
		notice:    "⚠️ 참고: API 연결 문제로 인해 AI 어시스턴트가 현재 오프라인 모드로 동작 중입니다.",
		directive: "당신은 Anmol의 AI 포트폴리오 어시스턴트입니다. 명확한 형식으로 한국어로 응답하세요.",
		quickReplies: [4]QuickReply{
			{"Anmol의 AI 프로젝트에 대해 알려주세요", "AI/ML 프로젝트에 대해 묻기"},
			{"그의 기술 스킬은 무엇인가요?", "프로그래밍 기술에 대해 묻기"},
			{"어떻게 연락할 수 있나요?", "연락처 정보 묻기"},
			{"그의 경험은 무엇인가요?", "업무 경험에 대해 묻기"},
		},
		ui: UI{
			ChatTitle:   "AI 어시스턴트",
			Placeholder: "Anmol의 프로젝트, 기술 또는 경험에 대해 물어보세요...",
			Send:        "전송",
			Clear:       "지우기",
			Retry:       "다시 시도",
			Typing:      "AI가 입력 중...",
			Error:       "오류 발생",
			Offline:     "오프라인 모드",
			Language:    "언어",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "설정 오류: API 키를 찾을 수 없습니다. 오프라인 모드를 사용합니다.",
			FailureAuthentication: "인증 오류: 잘못된 API 키입니다. 오프라인 모드를 사용합니다.",
			FailureRateLimit:      "요청 한도 오류: 요청이 너무 많습니다. 오프라인 모드를 사용합니다.",
			FailureNetwork:        "네트워크 오류: AI 서비스에 연결할 수 없습니다. 오프라인 모드를 사용합니다.",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"프로젝트"},
			TopicSkills:   {"스킬", "기술"},
			TopicContact:  {"연락", "이메일", "전화"},
		},

		projectsIntro: "제 AI/ML 프로젝트를 소개해 드릴게요!",
		projectsBuilt: "여러 흥미로운 애플리케이션을 만들었습니다:",
		projectItems: [5]string{
			"머신러닝을 활용한 작물 추천",
			"감정 분석을 포함한 WhatsApp 분석",
			"교육 기능을 갖춘 AI 코딩 어시스턴트",
			"LangChain을 활용한 수학 문제 해결기",
			"개선 제안을 제공하는 이력서 분석기",
		},
		projectsOutro: "각 프로젝트는 NLP, 머신러닝, 딥러닝 등 다양한 AI/ML 기술을 보여줍니다.",

		skillsIntro:     "주요 기술 스킬은 다음과 같습니다:",
		programming:     "프로그래밍 언어:",
		aiml:            "AI/ML 기술:",
		machineLearning: "머신러닝",
		deepLearning:    "딥러닝",
		generativeAI:    "생성형 AI",
		web:             "웹 개발:",
		skillsOutro:     "특히 AI/ML과 풀스택 개발에 열정을 가지고 있습니다!",

		contactIntro: "다음 채널로 연락하실 수 있습니다:",
		email:        "이메일",
		phone:        "전화",
		contactOutro: "새로운 기회와 흥미로운 프로젝트에 대해 언제든지 이야기 나누고 싶습니다!",

		greeting: "안녕하세요! Anmol의 AI 어시스턴트입니다.",
		canTell:  "다음 내용을 알려드릴 수 있습니다:",
		offers: [4]string{
			"AI/ML 프로젝트와 기술 스킬",
			"경력과 학력",
			"연락처와 성과",
			"웹 개발 및 데이터 과학 전문성",
		},
		question: "제 작업과 경험에 대해 무엇이 궁금하신가요?",
	},

	lang.Chinese: {
		welcome:   "👋 您好！我是Anmol的AI助手。我可以为您介绍他的项目、技能、经验和成就。您想了解什么？",
		notice:    "⚠️ 注意：由于API连接问题，AI助手当前处于离线模式。",
		directive: "您是Anmol的AI作品集助手。请用中文回答，格式清晰。",
		quickReplies: [4]QuickReply{
			{"告诉我Anmol的AI项目", "询问AI/ML项目"},
			{"他的技术技能是什么？", "询问编程技能"},
			{"我如何联系他？", "询问联系信息"},
			{"他的经验是什么？", "询问工作经验"},
		},
		ui: UI{
			ChatTitle:   "AI助手",
			Placeholder: "询问Anmol的项目、技能或经验...",
			Send:        "发送",
			Clear:       "清除",
			Retry:       "重试",
			Typing:      "AI正在输入...",
			Error:       "发生错误",
			Offline:     "离线模式",
			Language:    "语言",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "配置错误：未找到API密钥。正在使用离线模式。",
			FailureAuthentication: "认证错误：API密钥无效。正在使用离线模式。",
			FailureRateLimit:      "速率限制错误：请求过多。正在使用离线模式。",
			FailureNetwork:        "网络错误：无法连接到AI服务。正在使用离线模式。",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"项目", "作品"},
			TopicSkills:   {"技能", "技术"},
			TopicContact:  {"联系", "邮箱", "电话"},
		},

		projectsIntro: "很高兴向您介绍我的AI/ML项目！",
		projectsBuilt: "我开发了几个有趣的应用：",
		projectItems: [5]string{
			"基于机器学习的作物推荐",
			"带情感分析的WhatsApp数据分析",
			"具备教学能力的AI编程助手",
			"基于LangChain的数学问题求解器",
			"提供改进建议的简历分析器",
		},
		projectsOutro: "每个项目都展示了NLP、机器学习和深度学习等不同的AI/ML技术。",

		skillsIntro:     "我的核心技术技能包括：",
		programming:     "编程语言：",
		aiml:            "AI/ML技术：",
		machineLearning: "机器学习",
		deepLearning:    "深度学习",
		generativeAI:    "生成式AI",
		web:             "Web开发：",
		skillsOutro:     "我对AI/ML和全栈开发特别有热情！",

		contactIntro: "您可以通过以下方式联系我：",
		email:        "邮箱",
		phone:        "电话",
		contactOutro: "我随时欢迎讨论新的机会和有趣的项目！",

		greeting: "您好！我是Anmol的AI助手。",
		canTell:  "我可以为您介绍：",
		offers: [4]string{
			"他的AI/ML项目和技术技能",
			"工作经验和教育背景",
			"联系方式和成就",
			"Web开发和数据科学专长",
		},
		question: "您想了解我的哪些工作和经验？",
	},

	lang.Arabic: {
		welcome:   "👋 مرحباً! أنا مساعد أنمول الذكي. يمكنني إخبارك عن مشاريعه ومهاراته وخبراته وإنجازاته. ماذا تود أن تعرف؟",
		notice:    "⚠️ ملاحظة: يعمل المساعد الذكي حالياً في وضع عدم الاتصال بسبب مشاكل في الاتصال بالخدمة.",
		directive: "أنت مساعد محفظة الذكاء الاصطناعي لأنمول. اجب باللغة العربية مع تنسيق واضح.",
		quickReplies: [4]QuickReply{
			{"أخبرني عن مشاريع الذكاء الاصطناعي لأنمول", "اسأل عن مشاريع الذكاء الاصطناعي/التعلم الآلي"},
			{"ما هي مهاراته التقنية؟", "اسأل عن مهارات البرمجة"},
			{"كيف يمكنني الاتصال به؟", "اسأل عن معلومات الاتصال"},
			{"ما هي خبرته؟", "اسأل عن الخبرة العملية"},
		},
		ui: UI{
			ChatTitle:   "مساعد الذكاء الاصطناعي",
			Placeholder: "اسألني عن مشاريع أنمول ومهاراته أو خبرته...",
			Send:        "إرسال",
			Clear:       "مسح",
			Retry:       "إعادة المحاولة",
			Typing:      "الذكاء الاصطناعي يكتب...",
			Error:       "حدث خطأ",
			Offline:     "وضع عدم الاتصال",
			Language:    "اللغة",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "خطأ في الإعداد: لم يتم العثور على مفتاح الواجهة البرمجية. يتم استخدام وضع عدم الاتصال.",
			FailureAuthentication: "خطأ في المصادقة: مفتاح الواجهة البرمجية غير صالح. يتم استخدام وضع عدم الاتصال.",
			FailureRateLimit:      "تجاوز حد الطلبات: طلبات كثيرة جداً. يتم استخدام وضع عدم الاتصال.",
			FailureNetwork:        "خطأ في الشبكة: تعذر الاتصال بخدمة الذكاء الاصطناعي. يتم استخدام وضع عدم الاتصال.",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"مشروع", "مشاريع"},
			TopicSkills:   {"مهارات", "مهارة", "تقني"},
			TopicContact:  {"اتصال", "تواصل", "بريد", "هاتف"},
		},

		projectsIntro: "يسعدني أن أخبرك عن مشاريعي في الذكاء الاصطناعي وتعلم الآلة!",
		projectsBuilt: "قمت ببناء عدة تطبيقات مثيرة:",
		projectItems: [5]string{
			"توصية المحاصيل باستخدام تعلم الآلة",
			"تحليلات واتساب مع تحليل المشاعر",
			"مساعد برمجة بالذكاء الاصطناعي بقدرات تعليمية",
			"حل المسائل الرياضية باستخدام LangChain",
			"محلل السير الذاتية مع اقتراحات للتحسين",
		},
		projectsOutro: "يعرض كل مشروع تقنيات مختلفة في الذكاء الاصطناعي مثل معالجة اللغة الطبيعية وتعلم الآلة والتعلم العميق.",

		skillsIntro:     "تشمل مهاراتي التقنية الأساسية:",
		programming:     "لغات البرمجة:",
		aiml:            "تقنيات الذكاء الاصطناعي:",
		machineLearning: "تعلم الآلة",
		deepLearning:    "التعلم العميق",
		generativeAI:    "الذكاء الاصطناعي التوليدي",
		web:             "تطوير الويب:",
		skillsOutro:     "أنا شغوف بشكل خاص بالذكاء الاصطناعي وتطوير الويب المتكامل!",

		contactIntro: "يمكنك التواصل معي عبر عدة قنوات:",
		email:        "البريد الإلكتروني",
		phone:        "الهاتف",
		contactOutro: "أنا دائماً منفتح لمناقشة الفرص الجديدة والمشاريع المثيرة!",

		greeting: "مرحباً! أنا مساعد أنمول الذكي.",
		canTell:  "يمكنني أن أخبرك عن:",
		offers: [4]string{
			"مشاريعه في الذكاء الاصطناعي ومهاراته التقنية",
			"الخبرة المهنية والتعليم",
			"معلومات الاتصال والإنجازات",
			"خبرته في تطوير الويب وعلم البيانات",
		},
		question: "ماذا تود أن تعرف عن عملي وخبرتي؟",
	},

	lang.Portuguese: {
		welcome:   "👋 Olá! Sou o Assistente de IA do Anmol. Posso falar sobre seus projetos, habilidades, experiência e conquistas. O que você gostaria de saber?",
		notice:    "⚠️ Nota: o assistente de IA está usando o modo offline devido a problemas de conexão com a API.",
		directive: "Você é o assistente de IA do portfólio do Anmol. Responda em português com formatação clara.",
		quickReplies: [4]QuickReply{
			{"Fale sobre os projetos de IA do Anmol", "Pergunte sobre projetos de IA/ML"},
			{"Quais são suas habilidades técnicas?", "Pergunte sobre habilidades de programação"},
			{"Como posso contatá-lo?", "Pergunte por informações de contato"},
			{"Qual é a experiência dele?", "Pergunte sobre experiência profissional"},
		},
		ui: UI{
			ChatTitle:   "Assistente IA",
			Placeholder: "Pergunte-me sobre projetos, habilidades ou experiência do Anmol...",
			Send:        "Enviar",
			Clear:       "Limpar",
			Retry:       "Tentar novamente",
			Typing:      "IA está digitando...",
			Error:       "Erro ocorreu",
			Offline:     "Modo offline",
			Language:    "Idioma",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "Erro de configuração: chave de API não encontrada. Usando o modo offline.",
			FailureAuthentication: "Erro de autenticação: chave de API inválida. Usando o modo offline.",
			FailureRateLimit:      "Limite de requisições: muitas requisições. Usando o modo offline.",
			FailureNetwork:        "Erro de rede: não foi possível conectar ao serviço de IA. Usando o modo offline.",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"projeto", "ia"},
			TopicSkills:   {"habilidade", "tecnolog", "competência"},
			TopicContact:  {"contato", "contatar", "telefone"},
		},

		projectsIntro: "Adoraria contar sobre meus projetos de IA/ML!",
		projectsBuilt: "Construí várias aplicações interessantes:",
		projectItems: [5]string{
			"Recomendação de culturas usando machine learning",
			"Análise de WhatsApp com análise de sentimentos",
			"Assistente de código com IA e capacidades de ensino",
			"Solucionador de problemas matemáticos usando LangChain",
			"Analisador de currículos com sugestões de melhoria",
		},
		projectsOutro: "Cada projeto mostra diferentes tecnologias de IA/ML como NLP, machine learning e deep learning.",

		skillsIntro:     "Minhas principais habilidades técnicas incluem:",
		programming:     "Linguagens de Programação:",
		aiml:            "Tecnologias de IA/ML:",
		machineLearning: "Machine Learning",
		deepLearning:    "Deep Learning",
		generativeAI:    "IA Generativa",
		web:             "Desenvolvimento Web:",
		skillsOutro:     "Sou especialmente apaixonado por IA/ML e desenvolvimento full-stack!",

		contactIntro: "Você pode entrar em contato comigo por vários canais:",
		email:        "Email",
		phone:        "Telefone",
		contactOutro: "Estou sempre aberto a novas oportunidades e projetos interessantes!",

		greeting: "Olá! Sou o Assistente de IA do Anmol.",
		canTell:  "Posso falar sobre:",
		offers: [4]string{
			"Seus projetos de IA/ML e habilidades técnicas",
			"Experiência profissional e formação",
			"Informações de contato e conquistas",
			"Experiência em desenvolvimento web e ciência de dados",
		},
		question: "O que você gostaria de saber sobre meu trabalho e experiência?",
	},

	lang.Russian: {
		welcome:   "👋 Здравствуйте! Я ИИ-ассистент Анмола. Я могу рассказать о его проектах, навыках, опыте и достижениях. Что бы вы хотели узнать?",
		notice:    "⚠️ Примечание: ИИ-ассистент сейчас работает в офлайн-режиме из-за проблем с подключением к API.",
		directive: "Вы являетесь AI-помощником портфолио Анмола. Отвечайте на русском языке с четким форматированием.",
		quickReplies: [4]QuickReply{
			{"Расскажите об ИИ проектах Анмола", "Спросите о ИИ/МЛ проектах"},
			{"Какие у него технические навыки?", "Спросите о навыках программирования"},
			{"Как я могу с ним связаться?", "Спросите контактную информацию"},
			{"Какой у него опыт?", "Спросите о профессиональном опыте"},
		},
		ui: UI{
			ChatTitle:   "ИИ Помощник",
			Placeholder: "Спросите меня о проектах, навыках или опыте Анмола...",
			Send:        "Отправить",
			Clear:       "Очистить",
			Retry:       "Повторить",
			Typing:      "ИИ печатает...",
			Error:       "Произошла ошибка",
			Offline:     "Офлайн режим",
			Language:    "Язык",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "Ошибка конфигурации: API-ключ не найден. Используется офлайн-режим.",
			FailureAuthentication: "Ошибка аутентификации: недействительный API-ключ. Используется офлайн-режим.",
			FailureRateLimit:      "Превышен лимит запросов: слишком много запросов. Используется офлайн-режим.",
			FailureNetwork:        "Ошибка сети: не удалось подключиться к ИИ-сервису. Используется офлайн-режим.",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"проект", "ии"},
			TopicSkills:   {"навык", "технолог", "умени"},
			TopicContact:  {"контакт", "связат", "почт", "телефон"},
		},

		projectsIntro: "С удовольствием расскажу о моих проектах в области ИИ/МО!",
		projectsBuilt: "Я создал несколько интересных приложений:",
		projectItems: [5]string{
			"Рекомендация сельхозкультур с помощью машинного обучения",
			"Аналитика WhatsApp с анализом тональности",
			"ИИ-помощник по программированию с обучающими функциями",
			"Решение математических задач с помощью LangChain",
			"Анализатор резюме с рекомендациями по улучшению",
		},
		projectsOutro: "Каждый проект демонстрирует разные технологии ИИ/МО: NLP, машинное обучение и глубокое обучение.",

		skillsIntro:     "Мои основные технические навыки:",
		programming:     "Языки программирования:",
		aiml:            "Технологии ИИ/МО:",
		machineLearning: "Машинное обучение",
		deepLearning:    "Глубокое обучение",
		generativeAI:    "Генеративный ИИ",
		web:             "Веб-разработка:",
		skillsOutro:     "Особенно меня увлекают ИИ/МО и full-stack разработка!",

		contactIntro: "Связаться со мной можно несколькими способами:",
		email:        "Email",
		phone:        "Телефон",
		contactOutro: "Я всегда открыт для обсуждения новых возможностей и интересных проектов!",

		greeting: "Здравствуйте! Я ИИ-ассистент Анмола.",
		canTell:  "Я могу рассказать о:",
		offers: [4]string{
			"Его проектах в области ИИ/МО и технических навыках",
			"Профессиональном опыте и образовании",
			"Контактной информации и достижениях",
			"Опыте в веб-разработке и науке о данных",
		},
		question: "Что бы вы хотели узнать о моей работе и опыте?",
	},

	lang.Italian: {
		welcome:   "👋 Ciao! Sono l'Assistente IA di Anmol. Posso parlarti dei suoi progetti, competenze, esperienze e risultati. Cosa vorresti sapere?",
		notice:    "⚠️ Nota: l'assistente IA sta usando la modalità offline a causa di problemi di connessione all'API.",
		directive: "Sei l'assistente IA del portfolio di Anmol. Rispondi in italiano con formattazione chiara.",
		quickReplies: [4]QuickReply{
			{"Parlami dei progetti IA di Anmol", "Chiedi dei progetti IA/ML"},
			{"Quali sono le sue competenze tecniche?", "Chiedi delle competenze di programmazione"},
			{"Come posso contattarlo?", "Chiedi informazioni di contatto"},
			{"Qual è la sua esperienza?", "Chiedi dell'esperienza lavorativa"},
		},
		ui: UI{
			ChatTitle:   "Assistente IA",
			Placeholder: "Chiedimi dei progetti, competenze o esperienza di Anmol...",
			Send:        "Invia",
			Clear:       "Cancella",
			Retry:       "Riprova",
			Typing:      "L'IA sta scrivendo...",
			Error:       "Errore verificato",
			Offline:     "Modalità offline",
			Language:    "Lingua",
		},
		prefixes: map[Failure]string{
			FailureConfiguration:  "Errore di configurazione: chiave API non trovata. Uso la modalità offline.",
			FailureAuthentication: "Errore di autenticazione: chiave API non valida. Uso la modalità offline.",
			FailureRateLimit:      "Limite di richieste: troppe richieste. Uso la modalità offline.",
			FailureNetwork:        "Errore di rete: impossibile connettersi al servizio IA. Uso la modalità offline.",
		},
		keywords: map[Topic][]string{
			TopicProjects: {"progett", "ia"},
			TopicSkills:   {"competenz", "tecnolog", "abilità"},
			TopicContact:  {"contatt", "telefono"},
		},

		projectsIntro: "Sarei felice di parlarti dei miei progetti di IA/ML!",
		projectsBuilt: "Ho realizzato diverse applicazioni interessanti:",
		projectItems: [5]string{
			"Raccomandazione di colture con machine learning",
			"Analisi di WhatsApp con analisi del sentiment",
			"Assistente di programmazione IA con funzioni didattiche",
			"Risolutore di problemi matematici con LangChain",
			"Analizzatore di CV con suggerimenti di miglioramento",
		},
		projectsOutro: "Ogni progetto mette in mostra diverse tecnologie di IA/ML come NLP, machine learning e deep learning.",

		skillsIntro:     "Le mie principali competenze tecniche includono:",
		programming:     "Linguaggi di programmazione:",
		aiml:            "Tecnologie IA/ML:",
		machineLearning: "Machine Learning",
		deepLearning:    "Deep Learning",
		generativeAI:    "IA generativa",
		web:             "Sviluppo web:",
		skillsOutro:     "Sono particolarmente appassionato di IA/ML e sviluppo full-stack!",

		contactIntro: "Puoi contattarmi attraverso diversi canali:",
		email:        "Email",
		phone:        "Telefono",
		contactOutro: "Sono sempre disponibile a discutere nuove opportunità e progetti interessanti!",

		greeting: "Ciao! Sono l'Assistente IA di Anmol.",
		canTell:  "Posso parlarti di:",
		offers: [4]string{
			"I suoi progetti di IA/ML e le competenze tecniche",
			"Esperienza professionale e formazione",
			"Contatti e risultati",
			"Competenze in sviluppo web e data science",
		},
		question: "Cosa vorresti sapere sul mio lavoro e la mia esperienza?",
	},
}
