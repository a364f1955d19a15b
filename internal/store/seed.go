package store

import "hajjhub/pkg/models"

// seed loads the fixed launch content. The counters advance through the
// normal create path so later creates continue from the seeded ids.
func (s *MemStorage) seed() {
	for _, sc := range seedScholars {
		s.CreateScholar(sc)
	}
	for _, g := range seedHajjGuides {
		s.CreateHajjGuide(g)
	}
	for _, g := range seedUmrahGuides {
		s.CreateUmrahGuide(g)
	}
	for _, g := range seedMasjidGuides {
		s.CreateMasjidGuide(g)
	}
	for _, d := range seedDuas {
		s.CreateDua(d)
	}
	for _, a := range seedAdvertisements {
		s.CreateAdvertisement(a)
	}
}

var seedScholars = []models.InsertScholar{
	{
		Name:      "Sheikh Abdul Aziz Ibn Baaz",
		NameAr:    "الشيخ عبد العزيز بن باز",
		Title:     "Former Grand Mufti of Saudi Arabia",
		TitleAr:   "المفتي السابق للمملكة العربية السعودية",
		Bio:       "Known for his vast knowledge in Islamic jurisprudence and his comprehensive guidance on Hajj and Umrah rituals according to the Quran and Sunnah.",
		BioAr:     "معروف بمعرفته الواسعة في الفقه الإسلامي وإرشاداته الشاملة حول مناسك الحج والعمرة وفقًا للقرآن والسنة.",
		Expertise: []string{"Hajj", "Umrah", "Fiqh"},
	},
	{
		Name:      "Sheikh Muhammad ibn al Uthaymeen",
		NameAr:    "الشيخ محمد بن العثيمين",
		Title:     "Prominent Saudi Arabian Islamic scholar",
		TitleAr:   "عالم إسلامي سعودي بارز",
		Bio:       "Renowned for his clear explanations and detailed guidance on the proper performance of Hajj and Umrah rituals according to the Sunnah.",
		BioAr:     "اشتهر بشرحه الواضح وإرشاداته المفصلة حول الأداء الصحيح لمناسك الحج والعمرة وفقًا للسنة.",
		Expertise: []string{"Hajj", "Umrah", "Aqeedah"},
	},
	{
		Name:      "Sheikh Salih Al-Fawzan",
		NameAr:    "الشيخ صالح الفوزان",
		Title:     "Member of the Council of Senior Scholars",
		TitleAr:   "عضو مجلس كبار العلماء",
		Bio:       "Known for his scholarly work on Islamic jurisprudence and his guidance on the correct practice of Hajj and Umrah rituals.",
		BioAr:     "معروف بعمله العلمي في الفقه الإسلامي وإرشاداته حول الممارسة الصحيحة لمناسك الحج والعمرة.",
		Expertise: []string{"Hajj", "Umrah", "Fiqh", "Tawheed"},
	},
}

var seedHajjGuides = []models.InsertHajjGuide{
	{
		Title:         "Preparations before Hajj",
		TitleAr:       "الاستعدادات قبل الحج",
		Description:   "Learn about the essential preparations before embarking on your Hajj journey.",
		DescriptionAr: "تعرف على الاستعدادات الأساسية قبل الشروع في رحلة الحج.",
		Content: models.GuideContent{Sections: []models.GuideSection{
			{Title: "Physical Preparation", Content: "Ensure good health and physical fitness before Hajj. Consult with your doctor and get necessary vaccinations."},
			{Title: "Financial Preparation", Content: "Make sure all debts are settled and you have sufficient funds for the journey and for dependents while away."},
			{Title: "Spiritual Preparation", Content: "Learn about the rituals, make sincere repentance, seek forgiveness from others, and purify your intention."},
		}},
		ContentAr: models.GuideContent{Sections: []models.GuideSection{
			{Title: "الاستعداد البدني", Content: "تأكد من الصحة الجيدة واللياقة البدنية قبل الحج. استشر طبيبك واحصل على التطعيمات اللازمة."},
			{Title: "الاستعداد المالي", Content: "تأكد من تسوية جميع الديون ولديك أموال كافية للرحلة وللمعالين أثناء غيابك."},
			{Title: "الاستعداد الروحي", Content: "تعلم عن المناسك، واعمل توبة صادقة، واطلب المغفرة من الآخرين، وصفي نيتك."},
		}},
		Order:       1,
		ImageURL:    "https://images.unsplash.com/photo-1566378246598-c3cc0ca3d831",
		Reference:   "Based on teachings from Sheikh Abdul Aziz Ibn Baaz",
		ScholarID:   1,
		IsEssential: true,
	},
	{
		Title:         "Ihram and its requirements",
		TitleAr:       "الإحرام ومتطلباته",
		Description:   "Understanding the state of Ihram and the proper way to enter it.",
		DescriptionAr: "فهم حالة الإحرام والطريقة الصحيحة للدخول فيه.",
		Content: models.GuideContent{Sections: []models.GuideSection{
			{Title: "What is Ihram", Content: "Ihram is a sacred state that pilgrims enter before performing Hajj or Umrah, signifying purity and devotion."},
			{Title: "Ihram Clothing", Content: "Men wear two white unsewn sheets, while women wear regular modest clothes. Avoid perfume, cutting nails or hair."},
			{Title: "Talbiyah", Content: "After entering Ihram, recite the Talbiyah: 'Labbayk Allahumma labbayk, labbayk la shareeka laka labbayk, innal-hamda wan-ni'mata laka wal-mulk, la shareeka lak.'"},
		}},
		ContentAr: models.GuideContent{Sections: []models.GuideSection{
			{Title: "ما هو الإحرام", Content: "الإحرام هو حالة مقدسة يدخل فيها الحجاج قبل أداء الحج أو العمرة، مما يدل على النقاء والتفاني."},
			{Title: "ملابس الإحرام", Content: "يرتدي الرجال قطعتين بيضاء غير مخيطة، بينما ترتدي النساء ملابس محتشمة عادية. تجنب العطر، قص الأظافر أو الشعر."},
			{Title: "التلبية", Content: "بعد دخول الإحرام، رتل التلبية: 'لبيك اللهم لبيك، لبيك لا شريك لك لبيك، إن الحمد والنعمة لك والملك، لا شريك لك.'"},
		}},
		Order:       2,
		ImageURL:    "https://images.unsplash.com/photo-1581559178851-b99664da71bd",
		Reference:   "Sahih Bukhari 1549",
		ScholarID:   2,
		IsEssential: true,
	},
}

var seedUmrahGuides = []models.InsertUmrahGuide{
	{
		Title:         "Ihram",
		TitleAr:       "الإحرام",
		Description:   "Entering the sacred state with proper intention and wearing the prescribed clothing.",
		DescriptionAr: "الدخول في الحالة المقدسة بالنية الصحيحة وارتداء الملابس الموصوفة.",
		Content: models.GuideContent{Sections: []models.GuideSection{
			{Title: "Meeqat Locations", Content: "These are specific locations where pilgrims must enter into ihram. For those coming from Madinah, it's Dhul-Hulaifah (Abyar Ali)."},
			{Title: "How to Enter Ihram", Content: "Take a shower (ghusl), put on ihram garments (for men), make intention (niyyah) for Umrah, and recite the talbiyah."},
			{Title: "Prohibitions During Ihram", Content: "Avoid perfume, cutting hair/nails, covering the head (men), wearing gloves (women), hunting, marriage contracts, and intimate relations."},
		}},
		ContentAr: models.GuideContent{Sections: []models.GuideSection{
			{Title: "مواقع الميقات", Content: "هذه مواقع محددة يجب على الحجاج الدخول منها في الإحرام. بالنسبة للقادمين من المدينة، فهي ذو الحليفة (آبار علي)."},
			{Title: "كيفية دخول الإحرام", Content: "خذ حمامًا (غسل)، ارتدِ ملابس الإحرام (للرجال)، انوي (نية) للعمرة، وردد التلبية."},
			{Title: "المحظورات أثناء الإحرام", Content: "تجنب العطر، قص الشعر/الأظافر، تغطية الرأس (للرجال)، ارتداء القفازات (للنساء)، الصيد، عقود الزواج، والعلاقات الحميمة."},
		}},
		Order:       1,
		ImageURL:    "https://images.unsplash.com/photo-1591604129939-f1efa4d9f7fa",
		Reference:   "Sahih Bukhari 1549",
		ScholarID:   1,
		IsEssential: true,
	},
	{
		Title:         "Tawaf",
		TitleAr:       "الطواف",
		Description:   "Circumambulation of the Kaaba seven times in a counterclockwise direction.",
		DescriptionAr: "الطواف حول الكعبة سبع مرات في اتجاه عكس عقارب الساعة.",
		Content: models.GuideContent{Sections: []models.GuideSection{
			{Title: "Preparation for Tawaf", Content: "Ensure you are in a state of wudu (ablution). Begin at the Black Stone or in line with it."},
			{Title: "How to Perform Tawaf", Content: "Walk around the Kaaba seven times counterclockwise, with the Kaaba on your left. Men perform raml (brisk walking) in the first three rounds if possible."},
			{Title: "Supplications During Tawaf", Content: "There is no specific dua for tawaf. You can recite Quran, make personal dua, or use the reported dua: 'Rabbana atina fid-dunya hasanatan wa fil akhirati hasanatan wa qina adhaban-nar.'"},
		}},
		ContentAr: models.GuideContent{Sections: []models.GuideSection{
			{Title: "الاستعداد للطواف", Content: "تأكد من أنك في حالة وضوء. ابدأ عند الحجر الأسود أو في خط معه."},
			{Title: "كيفية أداء الطواف", Content: "السير حول الكعبة سبع مرات عكس اتجاه عقارب الساعة، مع وجود الكعبة على يسارك. يؤدي الرجال الرمل (المشي السريع) في الأشواط الثلاثة الأولى إذا أمكن."},
			{Title: "الأدعية أثناء الطواف", Content: "لا يوجد دعاء محدد للطواف. يمكنك تلاوة القرآن، عمل دعاء شخصي، أو استخدام الدعاء المأثور: 'ربنا آتنا في الدنيا حسنة وفي الآخرة حسنة وقنا عذاب النار.'"},
		}},
		Order:       2,
		ImageURL:    "https://images.unsplash.com/photo-1537031934600-7046ab816a21",
		Reference:   "Sahih Muslim 1218",
		ScholarID:   2,
		IsEssential: true,
	},
	{
		Title:         "Sa'i",
		TitleAr:       "السعي",
		Description:   "Walking seven times between the hills of Safa and Marwah inside the mosque.",
		DescriptionAr: "المشي سبع مرات بين جبلي الصفا والمروة داخل المسجد.",
		Content: models.GuideContent{Sections: []models.GuideSection{
			{Title: "Preparation for Sa'i", Content: "Sa'i is performed after Tawaf. Begin at Safa and end at Marwah. Wudu is recommended but not required."},
			{Title: "How to Perform Sa'i", Content: "Start at Safa, recite 'Innas-safa wal-marwata min sha'a'irillah', climb Safa and face Kaaba, raise hands and make dua. Walk to Marwah at normal pace, with brisk walking in the marked green area (men only). At Marwah, face Kaaba and make dua. This completes one round. Repeat for seven rounds (ending at Marwah)."},
			{Title: "Significance of Sa'i", Content: "Sa'i commemorates Hajar's search for water for her son Ismail. It symbolizes perseverance, trust in Allah, and striving in worship."},
		}},
		ContentAr: models.GuideContent{Sections: []models.GuideSection{
			{Title: "الاستعداد للسعي", Content: "يتم أداء السعي بعد الطواف. ابدأ عند الصفا وانتهِ عند المروة. الوضوء مستحب ولكنه ليس مطلوبًا."},
			{Title: "كيفية أداء السعي", Content: "ابدأ عند الصفا، وردد 'إن الصفا والمروة من شعائر الله'، اصعد الصفا وواجه الكعبة، ارفع يديك وادع. امشِ إلى المروة بوتيرة عادية، مع المشي السريع في المنطقة الخضراء المحددة (للرجال فقط). عند المروة، واجه الكعبة وادع. هذا يكمل شوطًا واحدًا. كرر لمدة سبعة أشواط (تنتهي عند المروة)."},
			{Title: "أهمية السعي", Content: "السعي يخلد ذكرى بحث هاجر عن الماء لابنها إسماعيل. وهو يرمز إلى المثابرة والثقة في الله والسعي في العبادة."},
		}},
		Order:       3,
		ImageURL:    "https://images.unsplash.com/photo-1590559911732-638a8f7d2272",
		Reference:   "Sahih Bukhari 1643",
		ScholarID:   3,
		IsEssential: true,
	},
	{
		Title:         "Halq/Taqseer",
		TitleAr:       "الحلق/التقصير",
		Description:   "Shaving or trimming the hair to mark the end of the Umrah rituals.",
		DescriptionAr: "حلق أو تقصير الشعر للإشارة إلى نهاية مناسك العمرة.",
		Content: models.GuideContent{Sections: []models.GuideSection{
			{Title: "Halq vs. Taqseer", Content: "Men can choose either to shave their entire head (halq - preferred) or to trim their hair (taqseer). Women should only trim their hair by the length of a fingertip."},
			{Title: "Proper Method", Content: "For halq, the entire head should be shaved. For taqseer, hair should be cut from all parts of the head, not just from one side."},
			{Title: "Completion of Umrah", Content: "After halq/taqseer, all restrictions of ihram are lifted and the Umrah is complete. Change back to regular clothes."},
		}},
		ContentAr: models.GuideContent{Sections: []models.GuideSection{
			{Title: "الحلق مقابل التقصير", Content: "يمكن للرجال اختيار إما حلق رأسهم بالكامل (الحلق - مفضل) أو تقصير شعرهم (التقصير). يجب على النساء فقط تقصير شعرهن بطول طرف الإصبع."},
			{Title: "الطريقة الصحيحة", Content: "للحلق، يجب حلق الرأس بالكامل. للتقصير، يجب قص الشعر من جميع أجزاء الرأس، وليس فقط من جانب واحد."},
			{Title: "إتمام العمرة", Content: "بعد الحلق/التقصير، ترفع جميع قيود الإحرام وتكتمل العمرة. غير ملابسك إلى الملابس العادية."},
		}},
		Order:       4,
		ImageURL:    "https://images.unsplash.com/photo-1564769610726-59a8889badc4",
		Reference:   "Sahih Muslim 1301",
		ScholarID:   1,
		IsEssential: true,
	},
}

var seedMasjidGuides = []models.InsertMasjidGuide{
	{
		Title:         "Rawdah (Garden of Paradise)",
		TitleAr:       "الروضة (حديقة الجنة)",
		Description:   "The area between the Prophet's house and his minbar, described as a garden from the gardens of Paradise.",
		DescriptionAr: "المنطقة بين بيت النبي ومنبره، توصف بأنها روضة من رياض الجنة.",
		Content: models.GuideContent{Sections: []models.GuideSection{
			{Title: "Location and Significance", Content: "The Rawdah is located between the Prophet's ﷺ tomb and his minbar (pulpit). The Prophet ﷺ said: 'Between my house and my minbar is a garden from the gardens of Paradise.'"},
			{Title: "Visiting Etiquette", Content: "Due to its special status, many Muslims desire to pray in the Rawdah. Be patient and respectful, as it can get very crowded. Men and women have separate visiting times."},
			{Title: "Worship in Rawdah", Content: "Praying in the Rawdah carries special virtue, but is not a requirement. Focus on the quality of your worship rather than the quantity."},
		}},
		ContentAr: models.GuideContent{Sections: []models.GuideSection{
			{Title: "الموقع والأهمية", Content: "تقع الروضة بين قبر النبي ﷺ ومنبره (المنبر). قال النبي ﷺ: 'ما بين بيتي ومنبري روضة من رياض الجنة.'"},
			{Title: "آداب الزيارة", Content: "نظرًا لمكانتها الخاصة، يرغب الكثير من المسلمين في الصلاة في الروضة. كن صبورًا ومحترمًا، حيث يمكن أن تصبح مزدحمة جدًا. للرجال والنساء أوقات زيارة منفصلة."},
			{Title: "العبادة في الروضة", Content: "الصلاة في الروضة تحمل فضيلة خاصة، ولكنها ليست مطلوبة. ركز على جودة عبادتك بدلاً من الكمية."},
		}},
		Category:   "Sacred Area",
		Location:   "Inside the main mosque",
		LocationAr: "داخل المسجد الرئيسي",
		ImageURL:   "https://images.unsplash.com/photo-1591604129939-f1efa4d9f7fa",
		Reference:  "Sahih Al-Bukhari 1196",
	},
	{
		Title:         "Main Prayer Hall",
		TitleAr:       "قاعة الصلاة الرئيسية",
		Description:   "The vast prayer area that can accommodate over a million worshippers with its magnificent architecture.",
		DescriptionAr: "منطقة الصلاة الواسعة التي يمكن أن تستوعب أكثر من مليون مصلي بهندستها المعمارية الرائعة.",
		Content: models.GuideContent{Sections: []models.GuideSection{
			{Title: "Architecture and Expansion", Content: "The main prayer hall has undergone numerous expansions throughout history. It features beautiful carpets, marble floors, and ornate pillars, with a mix of traditional Islamic and modern architectural elements."},
			{Title: "Prayer Times and Organization", Content: "The mosque organizes rows with clear markings on the carpet. Follow the guidance of the attendants for a smooth experience. The five daily prayers are called by beautiful voices of the muezzins."},
			{Title: "Virtue of Prayer", Content: "The Prophet ﷺ said: 'One prayer in my mosque is better than a thousand prayers elsewhere, except for Masjid Al-Haram (in Makkah).'"},
		}},
		ContentAr: models.GuideContent{Sections: []models.GuideSection{
			{Title: "العمارة والتوسع", Content: "خضعت قاعة الصلاة الرئيسية للعديد من التوسعات على مر التاريخ. تتميز بالسجاد الجميل والأرضيات الرخامية والأعمدة المزخرفة، مع مزيج من العناصر المعمارية الإسلامية التقليدية والحديثة."},
			{Title: "أوقات الصلاة والتنظيم", Content: "ينظم المسجد الصفوف بعلامات واضحة على السجاد. اتبع إرشادات المشرفين للحصول على تجربة سلسة. يتم النداء للصلوات الخمس اليومية بأصوات جميلة من المؤذنين."},
			{Title: "فضل الصلاة", Content: "قال النبي ﷺ: 'صلاة في مسجدي أفضل من ألف صلاة فيما سواه، إلا المسجد الحرام (في مكة).'"},
		}},
		Category:   "Prayer Area",
		Location:   "Central area of the mosque",
		LocationAr: "المنطقة المركزية للمسجد",
		ImageURL:   "https://images.unsplash.com/photo-1564769610726-59a8889badc4",
		Reference:  "Sahih Muslim 1394",
	},
	{
		Title:         "Historical Sites",
		TitleAr:       "المواقع التاريخية",
		Description:   "Explore the various historical markers, minarets, and the expansion history of the mosque through centuries.",
		DescriptionAr: "استكشف المعالم التاريخية المختلفة والمآذن وتاريخ توسع المسجد عبر القرون.",
		Content: models.GuideContent{Sections: []models.GuideSection{
			{Title: "The Green Dome", Content: "This distinctive feature marks the location of the Prophet's ﷺ tomb. Built in the early Islamic era, it was painted green during the Ottoman period and has become the iconic symbol of the mosque."},
			{Title: "The Ten Minarets", Content: "The mosque features ten minarets of varying heights and designs, representing different periods of expansion. The tallest ones stand at 105 meters high."},
			{Title: "Historical Sections", Content: "Each expansion of the mosque reflects the architectural style of its era. Notice the different styles from the Ottoman, Saudi, and modern periods, each with unique characteristics."},
		}},
		ContentAr: models.GuideContent{Sections: []models.GuideSection{
			{Title: "القبة الخضراء", Content: "تميز هذه الميزة المميزة موقع قبر النبي ﷺ. بنيت في العصر الإسلامي المبكر، وطليت باللون الأخضر خلال الفترة العثمانية وأصبحت الرمز الأيقوني للمسجد."},
			{Title: "المآذن العشر", Content: "يضم المسجد عشر مآذن بارتفاعات وتصاميم متنوعة، تمثل فترات مختلفة من التوسع. أطولها يبلغ ارتفاعها 105 متر."},
			{Title: "الأقسام التاريخية", Content: "يعكس كل توسع للمسجد الطراز المعماري لعصره. لاحظ الأنماط المختلفة من الفترات العثمانية والسعودية والحديثة، ولكل منها خصائص فريدة."},
		}},
		Category:   "Historical Landmarks",
		Location:   "Throughout the mosque complex",
		LocationAr: "في جميع أنحاء مجمع المسجد",
		ImageURL:   "https://images.unsplash.com/photo-1537031934600-7046ab816a21",
		Reference:  "Various historical sources",
	},
}

var seedDuas = []models.InsertDua{
	{
		Title:           "Dua for Entering Ihram",
		TitleAr:         "دعاء دخول الإحرام",
		ArabicText:      "لَبَّيْكَ اللَّهُمَّ لَبَّيْكَ، لَبَّيْكَ لَا شَرِيكَ لَكَ لَبَّيْكَ، إِنَّ الْحَمْدَ وَالنِّعْمَةَ لَكَ وَالْمُلْكَ، لَا شَرِيكَ لَكَ",
		Transliteration: "Labbayk Allahumma labbayk, labbayk la shareeka laka labbayk, innal-hamda wan-ni'mata laka wal-mulk, la shareeka lak.",
		Translation:     "Here I am, O Allah, here I am. Here I am, You have no partner, here I am. Verily all praise, grace and sovereignty belong to You. You have no partner.",
		TranslationAr:   "لبيك اللهم لبيك، لبيك لا شريك لك لبيك، إن الحمد والنعمة لك والملك، لا شريك لك",
		Reference:       "Sahih Bukhari 1549",
		Category:        "Hajj & Umrah",
		Tags:            []string{"Ihram", "Talbiyah", "Hajj", "Umrah"},
	},
	{
		Title:           "Dua When Seeing the Kaaba",
		TitleAr:         "دعاء عند رؤية الكعبة",
		ArabicText:      "اللَّهُمَّ زِدْ بَيْتَكَ هَذَا تَشْرِيفًا وَتَعْظِيمًا وَتَكْرِيمًا وَمَهَابَةً، وَزِدْ مِنْ شَرَّفَهُ وَعَظَّمَهُ مِمَّنْ حَجَّهُ أَوْ اعْتَمَرَهُ تَشْرِيفًا وَتَكْرِيمًا وَتَعْظِيمًا وَبِرًّا",
		Transliteration: "Allahumma zid hatha al-bayta tashreefan wa ta'dheeman wa takreeman wa mahabatan, wa zid man sharrafahu wa 'adhdhamahu mimman hajjahu aw i'tamarahu tashreefan wa takreeman wa ta'dheeman wa birran.",
		Translation:     "O Allah, increase this House in honor, dignity, reverence and awe, and increase those who honor and revere it among those who come to it for Hajj or 'Umrah in honor, dignity, reverence and righteousness.",
		TranslationAr:   "اللهم زد هذا البيت تشريفًا وتعظيمًا وتكريمًا ومهابةً، وزد من شرفه وعظمه ممن حجه أو اعتمره تشريفًا وتكريمًا وتعظيمًا وبرًا",
		Reference:       "Reported by Ibn 'Umar",
		Category:        "Hajj & Umrah",
		Tags:            []string{"Kaaba", "Tawaf", "Hajj", "Umrah"},
	},
	{
		Title:           "Dua Between Safa and Marwah",
		TitleAr:         "دعاء بين الصفا والمروة",
		ArabicText:      "رَبِّ اغْفِرْ وَارْحَمْ إِنَّكَ أَنْتَ الْأَعَزُّ الْأَكْرَمُ",
		Transliteration: "Rabbighfir warham innaka antal a'azzul akram.",
		Translation:     "O Lord, forgive and have mercy, indeed You are the Most Mighty, the Most Noble.",
		TranslationAr:   "رب اغفر وارحم إنك أنت الأعز الأكرم",
		Reference:       "Reported by Ibn 'Abbas",
		Category:        "Hajj & Umrah",
		Tags:            []string{"Sa'i", "Hajj", "Umrah"},
	},
}

var seedAdvertisements = []models.InsertAdvertisement{
	{
		Title:            "Verified Hajj travel packages",
		Description:      "Premium Hajj travel services with authentic guidance and support",
		Link:             "https://example.com/hajj-packages",
		ImagePlaceholder: "hajj-travel-ad",
		Location:         "sidebar",
		IsActive:         true,
	},
	{
		Title:            "Islamic books and resources",
		Description:      "Authentic Islamic literature for Hajj and Umrah preparation",
		Link:             "https://example.com/islamic-books",
		ImagePlaceholder: "islamic-books-ad",
		Location:         "sidebar",
		IsActive:         true,
	},
	{
		Title:            "Accommodation near holy sites",
		Description:      "Convenient and comfortable accommodation options near Masjid Al-Haram",
		Link:             "https://example.com/accommodation",
		ImagePlaceholder: "accommodation-ad",
		Location:         "sidebar",
		IsActive:         true,
	},
	{
		Title:            "Hajj visa services",
		Description:      "Professional visa processing for your pilgrimage journey",
		Link:             "https://example.com/visa-services",
		ImagePlaceholder: "visa-ad",
		Location:         "homepage",
		IsActive:         true,
	},
}
