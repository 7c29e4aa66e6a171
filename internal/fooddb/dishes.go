package fooddb

import "mcp-food-vision/internal/models"

type portions = map[string]float64

func per100g(kcal, protein, carbs, fat, fiber, sodium float64) models.Nutrients {
	return models.Nutrients{Calories: kcal, Protein: protein, Carbs: carbs, Fat: fat, Fiber: fiber, Sodium: sodium}
}

func dish(name, nameEN string, c models.Category, n models.Nutrients, p portions, keywords ...string) models.ReferenceFoodEntry {
	return models.ReferenceFoodEntry{Name: name, NameEN: nameEN, Per100g: n, Category: c, Portions: p, Keywords: keywords}
}

// Compound dishes are listed before their components so that substring
// matching prefers the more specific entry.
var dishes = []models.ReferenceFoodEntry{
	// grains
	dish("ข้าวสวย", "steamed rice", models.CategoryGrains, per100g(130, 2.7, 28, 0.3, 0.4, 1),
		portions{"1 จาน": 200, "1/2 จาน": 100, "1 ทัพพี": 60}, "white rice", "plain rice", "jasmine rice"),
	dish("ข้าวกล้อง", "brown rice", models.CategoryGrains, per100g(111, 2.6, 23, 0.9, 1.8, 5),
		portions{"1 จาน": 200, "1 ทัพพี": 60}, "whole grain rice"),
	dish("ข้าวเหนียวมะม่วง", "mango sticky rice", models.CategoryDessert, per100g(215, 2.8, 42, 5.5, 1.2, 90),
		portions{"1 จาน": 250}, "khao niao mamuang"),
	dish("ข้าวเหนียว", "sticky rice", models.CategoryGrains, per100g(169, 3.5, 37, 0.3, 0.9, 3),
		portions{"1 กระติบ": 150, "1 ห่อ": 100, "1 ปั้น": 50}, "glutinous rice"),
	dish("โจ๊กหมู", "pork congee", models.CategoryGrains, per100g(60, 3.5, 8.5, 1.4, 0.2, 300),
		portions{"1 ชาม": 350, "1 ถ้วย": 250}, "congee", "jok", "rice porridge"),
	dish("ข้าวต้มหมู", "pork rice soup", models.CategoryGrains, per100g(50, 3, 7, 1.2, 0.2, 320),
		portions{"1 ชาม": 350}, "khao tom"),
	dish("ขนมปัง", "bread", models.CategoryGrains, per100g(265, 9, 49, 3.2, 2.7, 490),
		portions{"1 แผ่น": 30, "2 แผ่น": 60}, "toast", "white bread"),

	// rice and noodle plates
	dish("ข้าวคลุกกะปิ", "shrimp paste fried rice", models.CategoryMainDish, per100g(175, 6, 25, 6, 1, 700),
		portions{"1 จาน": 250}, "khao kluk kapi"),
	dish("ข้าวผัดกุ้ง", "shrimp fried rice", models.CategoryMainDish, per100g(170, 7, 24, 5.5, 0.8, 450),
		portions{"1 จาน": 250}, "prawn fried rice"),
	dish("ข้าวผัด", "fried rice", models.CategoryMainDish, per100g(163, 5, 25, 5, 0.8, 420),
		portions{"1 จาน": 250}, "khao pad", "khao phat"),
	dish("ข้าวกะเพราไก่ไข่ดาว", "rice with holy basil chicken and fried egg", models.CategoryMainDish, per100g(190, 9, 20, 8.5, 0.8, 560),
		portions{"1 จาน": 350}, "kaprao rice with egg"),
	dish("ผัดกะเพรา", "stir-fried holy basil", models.CategoryMainDish, per100g(160, 12, 8, 9, 1.5, 700),
		portions{"1 จาน": 200}, "kaprao", "krapow", "kra pao", "holy basil"),
	dish("ผัดไทย", "pad thai", models.CategoryMainDish, per100g(190, 7, 27, 6, 1.2, 520),
		portions{"1 จาน": 250}, "phad thai", "pad_thai"),
	dish("ผัดซีอิ๊ว", "pad see ew", models.CategoryMainDish, per100g(175, 6.5, 24, 6, 1, 600),
		portions{"1 จาน": 250}, "soy sauce noodles", "see ew"),
	dish("ราดหน้า", "rad na", models.CategoryMainDish, per100g(110, 5, 13, 4, 0.8, 480),
		portions{"1 จาน": 350}, "gravy noodles", "lad na"),
	dish("ข้าวมันไก่", "hainanese chicken rice", models.CategoryMainDish, per100g(185, 8, 22, 7, 0.3, 420),
		portions{"1 จาน": 300}, "khao man gai", "chicken rice"),
	dish("ข้าวขาหมู", "stewed pork leg on rice", models.CategoryMainDish, per100g(200, 9, 20, 9.5, 0.3, 520),
		portions{"1 จาน": 300}, "khao kha moo", "pork leg"),
	dish("ข้าวหมูแดง", "red barbecue pork on rice", models.CategoryMainDish, per100g(170, 8, 25, 4, 0.5, 480),
		portions{"1 จาน": 300}, "khao moo daeng", "char siu", "red pork"),
	dish("ข้าวหมกไก่", "chicken biryani", models.CategoryMainDish, per100g(180, 8, 24, 6, 0.8, 400),
		portions{"1 จาน": 300}, "biryani", "khao mok"),
	dish("ข้าวไข่เจียว", "omelette on rice", models.CategoryMainDish, per100g(200, 6, 22, 10, 0.3, 300),
		portions{"1 จาน": 250}, "omelette rice"),
	dish("ไก่ผัดเม็ดมะม่วง", "cashew chicken", models.CategoryMainDish, per100g(210, 14, 12, 12, 1.2, 480),
		portions{"1 จาน": 200}, "chicken with cashew"),
	dish("ผัดเปรี้ยวหวาน", "sweet and sour stir fry", models.CategoryMainDish, per100g(130, 8, 14, 5, 1.2, 420),
		portions{"1 จาน": 200}, "sweet and sour"),
	dish("หอยทอด", "crispy mussel pancake", models.CategoryMainDish, per100g(230, 7, 22, 13, 0.5, 520),
		portions{"1 จาน": 200}, "hoy tod", "oyster omelette"),
	dish("กุ้งอบวุ้นเส้น", "baked prawns with glass noodles", models.CategoryMainDish, per100g(160, 9, 20, 5, 0.6, 600),
		portions{"1 หม้อ": 300, "1 จาน": 250}, "goong ob woon sen"),
	dish("ยำวุ้นเส้น", "glass noodle salad", models.CategoryMainDish, per100g(110, 6, 14, 3, 1, 580),
		portions{"1 จาน": 200}, "yum woon sen"),
	dish("ยำมาม่า", "spicy instant noodle salad", models.CategoryMainDish, per100g(180, 6, 22, 8, 1, 750),
		portions{"1 จาน": 200}, "yum mama"),
	dish("พิซซ่า", "pizza", models.CategoryMainDish, per100g(266, 11, 33, 10, 2.3, 600),
		portions{"1 ชิ้น": 110, "1 ถาด": 650}),
	dish("แฮมเบอร์เกอร์", "hamburger", models.CategoryMainDish, per100g(250, 13, 24, 11, 1.3, 500),
		portions{"1 ชิ้น": 200, "1 อัน": 200}, "burger", "cheeseburger"),
	dish("แซนด์วิช", "sandwich", models.CategoryMainDish, per100g(230, 11, 28, 8, 2, 550),
		portions{"1 ชิ้น": 150, "1 อัน": 150}, "club sandwich"),
	dish("ซูชิ", "sushi", models.CategoryMainDish, per100g(150, 6, 28, 1.5, 0.5, 430),
		portions{"1 ชิ้น": 35, "1 จาน": 200}, "maki", "nigiri"),
	dish("สปาเก็ตตี้", "spaghetti", models.CategoryMainDish, per100g(150, 6, 22, 4.5, 1.8, 350),
		portions{"1 จาน": 300}, "pasta", "carbonara", "bolognese"),

	// noodle soups
	dish("ก๋วยเตี๋ยวเรือ", "boat noodles", models.CategoryMainDish, per100g(85, 5, 10, 2.8, 0.4, 520),
		portions{"1 ชาม": 250}, "boat noodle", "kuay teow ruea"),
	dish("บะหมี่เกี๊ยว", "egg noodle wonton soup", models.CategoryMainDish, per100g(90, 5, 11, 3, 0.5, 420),
		portions{"1 ชาม": 400}, "wonton noodle", "bamee"),
	dish("เย็นตาโฟ", "yen ta fo", models.CategoryMainDish, per100g(80, 4.5, 11, 2, 0.5, 500),
		portions{"1 ชาม": 400}, "pink noodle soup"),
	dish("ก๋วยจั๊บ", "rolled rice noodle soup", models.CategoryMainDish, per100g(70, 5, 8, 2, 0.2, 450),
		portions{"1 ชาม": 400}, "kuay jab", "guay jub"),
	dish("ข้าวซอย", "khao soi", models.CategoryMainDish, per100g(140, 7, 14, 6.5, 0.8, 500),
		portions{"1 ชาม": 400}, "curry noodle soup", "khao soy"),
	dish("ขนมจีนน้ำยา", "rice noodles with fish curry", models.CategoryMainDish, per100g(95, 4.5, 13, 3, 1, 420),
		portions{"1 จาน": 350}, "khanom jeen nam ya"),
	dish("ก๋วยเตี๋ยวน้ำ", "noodle soup", models.CategoryMainDish, per100g(75, 4.5, 10, 2, 0.4, 380),
		portions{"1 ชาม": 400}, "kuay teow", "pho", "ramen", "udon"),
	dish("สุกี้น้ำ", "suki soup", models.CategoryMainDish, per100g(55, 4, 5, 2, 1, 480),
		portions{"1 ชาม": 450}, "suki", "sukiyaki", "hot pot"),
	dish("มาม่า", "instant noodles", models.CategoryMainDish, per100g(90, 2, 13, 3.5, 0.5, 500),
		portions{"1 ชาม": 300, "1 ซอง": 60}, "instant noodle", "mama"),
	dish("ขนมจีน", "rice vermicelli", models.CategoryGrains, per100g(110, 1.8, 25, 0.2, 0.6, 5),
		portions{"1 จับ": 60}, "khanom jeen"),

	// protein
	dish("ไข่เจียว", "omelette", models.CategoryProtein, per100g(210, 11, 1.5, 18, 0, 300),
		portions{"1 ฟอง": 60, "1 จาน": 120}, "omelet", "thai omelette"),
	dish("ไข่ดาว", "fried egg", models.CategoryProtein, per100g(196, 13.6, 0.8, 15, 0, 207),
		portions{"1 ฟอง": 50}, "sunny side up"),
	dish("ไข่ต้ม", "boiled egg", models.CategoryProtein, per100g(155, 12.6, 1.1, 10.6, 0, 124),
		portions{"1 ฟอง": 50}, "hard boiled egg", "deviled eggs"),
	dish("ไก่ย่าง", "grilled chicken", models.CategoryProtein, per100g(190, 27, 1, 8, 0, 450),
		portions{"1 ชิ้น": 120, "1/2 ตัว": 400, "1 ไม้": 80}, "gai yang", "chicken wings"),
	dish("ไก่ทอด", "fried chicken", models.CategoryProtein, per100g(260, 24, 8, 15, 0.4, 500),
		portions{"1 ชิ้น": 120}, "gai tod", "chicken nuggets"),
	dish("หมูปิ้ง", "grilled pork skewers", models.CategoryProtein, per100g(250, 20, 8, 15, 0.2, 600),
		portions{"1 ไม้": 30, "3 ไม้": 90}, "moo ping", "pork skewer"),
	dish("หมูสะเต๊ะ", "pork satay", models.CategoryProtein, per100g(230, 19, 9, 13, 0.5, 430),
		portions{"1 ไม้": 25, "5 ไม้": 125}, "satay"),
	dish("คอหมูย่าง", "grilled pork neck", models.CategoryProtein, per100g(330, 17, 3, 28, 0, 480),
		portions{"1 จาน": 150}, "kor moo yang", "pork neck"),
	dish("น้ำตกหมู", "grilled pork salad", models.CategoryProtein, per100g(170, 18, 4, 9, 1, 620),
		portions{"1 จาน": 150}, "nam tok"),
	dish("หมูย่าง", "grilled pork", models.CategoryProtein, per100g(240, 22, 3, 16, 0, 520),
		portions{"1 จาน": 150}, "moo yang"),
	dish("หมูทอดกระเทียม", "garlic fried pork", models.CategoryProtein, per100g(270, 22, 5, 18, 0.3, 520),
		portions{"1 จาน": 150}, "garlic pork", "pork chop"),
	dish("เสือร้องไห้", "crying tiger grilled beef", models.CategoryProtein, per100g(220, 26, 2, 12, 0, 400),
		portions{"1 จาน": 150}, "crying tiger", "grilled beef"),
	dish("สเต๊กเนื้อ", "beef steak", models.CategoryProtein, per100g(250, 26, 0, 16, 0, 60),
		portions{"1 ชิ้น": 200}, "steak", "filet mignon", "prime rib"),
	dish("ทอดมันปลา", "fried fish cakes", models.CategoryProtein, per100g(220, 13, 15, 12, 1, 700),
		portions{"1 ชิ้น": 25, "1 จาน": 150}, "fish cake", "tod mun"),
	dish("ปลาทอด", "fried fish", models.CategoryProtein, per100g(230, 20, 6, 14, 0.2, 380),
		portions{"1 ตัว": 250, "1 ชิ้น": 100}, "fish and chips", "fried tilapia"),
	dish("ปลานึ่งมะนาว", "steamed fish with lime", models.CategoryProtein, per100g(95, 17, 3, 1.8, 0.3, 600),
		portions{"1 ตัว": 400, "1 จาน": 300}, "steamed fish", "pla neung manao"),
	dish("ปลาเผา", "salt grilled fish", models.CategoryProtein, per100g(120, 22, 0, 3.5, 0, 500),
		portions{"1 ตัว": 400}, "pla pao", "grilled fish", "grilled salmon"),
	dish("กุ้งเผา", "grilled prawns", models.CategoryProtein, per100g(105, 21, 0.5, 1.7, 0, 380),
		portions{"1 ตัว": 40, "1 จาน": 200}, "grilled shrimp", "shrimp and grits"),
	dish("ลูกชิ้นปิ้ง", "grilled meatballs", models.CategoryProtein, per100g(180, 11, 10, 10, 0.3, 850),
		portions{"1 ไม้": 40}, "meatball", "luk chin"),
	dish("ไส้กรอกอีสาน", "isan sausage", models.CategoryProtein, per100g(280, 14, 10, 20, 0.3, 800),
		portions{"1 ไม้": 50, "1 ชิ้น": 25}, "sai krok", "sausage", "hot dog"),
	dish("แหนม", "fermented pork", models.CategoryProtein, per100g(180, 17, 5, 10, 0.2, 900),
		portions{"1 ห่อ": 50}, "naem", "nham"),
	dish("ลาบหมู", "spicy minced pork salad", models.CategoryProtein, per100g(150, 17, 5, 7, 1.5, 650),
		portions{"1 จาน": 150}, "larb", "laab", "larb moo"),
	dish("ยำทะเล", "spicy seafood salad", models.CategoryProtein, per100g(100, 13, 6, 2.5, 0.8, 650),
		portions{"1 จาน": 200}, "yum talay", "seafood salad", "ceviche"),
	dish("น้ำพริกปลาทู", "chili dip with mackerel", models.CategoryProtein, per100g(150, 12, 8, 8, 2.5, 900),
		portions{"1 ชุด": 250}, "nam prik pla tu", "nam prik"),
	dish("เต้าหู้ทอด", "fried tofu", models.CategoryProtein, per100g(270, 17, 9, 20, 3.9, 16),
		portions{"1 ชิ้น": 30, "1 จาน": 150}, "tofu"),

	// vegetables and salads
	dish("ส้มตำปู", "papaya salad with crab", models.CategoryVegetable, per100g(60, 2.5, 9.5, 0.8, 2, 950),
		portions{"1 จาน": 200}, "som tam poo"),
	dish("ส้มตำ", "papaya salad", models.CategoryVegetable, per100g(55, 1.5, 10, 0.7, 2.2, 700),
		portions{"1 จาน": 200}, "som tam", "somtum", "green papaya"),
	dish("ตำข้าวโพด", "corn salad", models.CategoryVegetable, per100g(90, 2.5, 17, 1.5, 2, 500),
		portions{"1 จาน": 200}, "tam khao pod"),
	dish("ผัดผักรวม", "stir-fried mixed vegetables", models.CategoryVegetable, per100g(60, 2, 6, 3.5, 2, 350),
		portions{"1 จาน": 200, "1/2 จาน": 100}, "mixed vegetables", "stir fried vegetables", "pad pak"),
	dish("ผัดผักบุ้ง", "stir-fried morning glory", models.CategoryVegetable, per100g(70, 2.5, 4, 5, 2, 520),
		portions{"1 จาน": 150}, "morning glory", "water spinach", "pak boong"),
	dish("ผัดถั่วงอก", "stir-fried bean sprouts", models.CategoryVegetable, per100g(50, 3, 5, 2.5, 1.5, 380),
		portions{"1 จาน": 150}, "bean sprouts"),
	dish("ผักลวก", "blanched vegetables", models.CategoryVegetable, per100g(30, 2, 5, 0.3, 2.5, 30),
		portions{"1 จาน": 100}, "boiled vegetables", "steamed vegetables"),
	dish("ผักสด", "fresh vegetables", models.CategoryVegetable, per100g(20, 1.2, 4, 0.2, 2, 20),
		portions{"1 จาน": 100}, "garden salad", "caesar salad", "lettuce"),

	// curries
	dish("แกงเขียวหวานไก่", "green curry with chicken", models.CategoryCurry, per100g(150, 9, 5, 11, 1, 550),
		portions{"1 ถ้วย": 250, "1 ชาม": 300}, "green curry", "kaeng khiao wan"),
	dish("แกงแดง", "red curry", models.CategoryCurry, per100g(140, 9, 5, 10, 1.2, 560),
		portions{"1 ถ้วย": 250}, "kaeng phet"),
	dish("แกงมัสมั่น", "massaman curry", models.CategoryCurry, per100g(170, 8, 12, 10, 1.5, 450),
		portions{"1 ถ้วย": 250}, "massaman", "matsaman"),
	dish("พะแนง", "panang curry", models.CategoryCurry, per100g(200, 12, 6, 15, 1, 520),
		portions{"1 ถ้วย": 200}, "panang", "penang"),
	dish("แกงส้ม", "sour curry", models.CategoryCurry, per100g(45, 4, 5, 1, 1.2, 650),
		portions{"1 ถ้วย": 300}, "kaeng som"),
	dish("แกงป่า", "jungle curry", models.CategoryCurry, per100g(60, 6, 3, 3, 1.5, 600),
		portions{"1 ถ้วย": 300}, "kaeng pa"),
	dish("แกงเหลือง", "yellow curry", models.CategoryCurry, per100g(90, 6, 5, 5.5, 1.2, 620),
		portions{"1 ถ้วย": 300}, "kaeng lueang"),
	dish("แกงฮังเล", "hang le pork curry", models.CategoryCurry, per100g(200, 12, 8, 13, 1, 550),
		portions{"1 ถ้วย": 200}, "hung lay"),
	dish("ฉู่ฉี่ปลา", "chu chee fish curry", models.CategoryCurry, per100g(150, 13, 5, 9, 0.8, 500),
		portions{"1 จาน": 200}, "chu chee"),
	dish("แกงกะหรี่ไก่", "chicken curry", models.CategoryCurry, per100g(120, 8, 8, 6.5, 1.2, 450),
		portions{"1 ถ้วย": 250}, "curry", "kaeng kari"),

	// soups
	dish("ต้มยำกุ้ง", "tom yum goong", models.CategorySoup, per100g(45, 5, 3, 1.5, 0.5, 650),
		portions{"1 ชาม": 350, "1 ถ้วย": 250}, "tom yum", "tom yam", "hot and sour soup"),
	dish("ต้มข่าไก่", "tom kha gai", models.CategorySoup, per100g(110, 6, 4, 8, 0.5, 500),
		portions{"1 ชาม": 350, "1 ถ้วย": 250}, "tom kha", "coconut soup"),
	dish("แกงจืดเต้าหู้หมูสับ", "clear soup with tofu and minced pork", models.CategorySoup, per100g(35, 3.5, 1.5, 1.6, 0.4, 400),
		portions{"1 ชาม": 350, "1 ถ้วย": 250}, "clear soup", "kaeng jued", "miso soup"),
	dish("ต้มจับฉ่าย", "chinese vegetable stew", models.CategorySoup, per100g(40, 2.5, 4, 1.5, 1.5, 450),
		portions{"1 ชาม": 350}, "jap chai"),
	dish("ต้มเลือดหมู", "pork blood soup", models.CategorySoup, per100g(50, 5, 2, 2.5, 0.2, 500),
		portions{"1 ชาม": 350}, "tom lueat mu"),
	dish("ต้มแซ่บ", "spicy pork soup", models.CategorySoup, per100g(60, 7, 2, 2.5, 0.3, 600),
		portions{"1 ชาม": 350}, "tom saap", "tom zap"),
	dish("ไข่พะโล้", "five spice egg stew", models.CategorySoup, per100g(100, 6, 5, 6, 0.3, 450),
		portions{"1 ชาม": 300, "1 ถ้วย": 250}, "kai palo", "palo"),

	// snacks
	dish("ปอเปี๊ยะทอด", "fried spring rolls", models.CategorySnack, per100g(250, 5, 28, 13, 1.5, 450),
		portions{"1 ชิ้น": 30, "1 จาน": 150}, "spring roll", "egg roll", "popia"),
	dish("กล้วยทอด", "fried bananas", models.CategorySnack, per100g(240, 1.8, 37, 10, 2, 80),
		portions{"1 ชิ้น": 25, "1 ถุง": 150}, "kluay tod", "banana fritter"),
	dish("ขนมจีบ", "shumai dumplings", models.CategorySnack, per100g(190, 10, 18, 8.5, 0.8, 500),
		portions{"1 ชิ้น": 20, "1 จาน": 120}, "dumpling", "siu mai", "gyoza"),
	dish("ซาลาเปา", "steamed bun", models.CategorySnack, per100g(230, 7, 38, 5.5, 1.2, 350),
		portions{"1 ลูก": 80}, "salapao", "bao", "pork bun"),
	dish("ปาท่องโก๋", "deep fried dough sticks", models.CategorySnack, per100g(400, 7, 45, 21, 1.5, 500),
		portions{"1 ตัว": 30, "1 ถุง": 150}, "patongko", "chinese donut", "churros"),
	dish("เฟรนช์ฟรายส์", "french fries", models.CategorySnack, per100g(312, 3.4, 41, 15, 3.8, 210),
		portions{"1 ที่": 120, "1 กล่อง": 150}, "fries", "chips"),
	dish("ข้าวเกรียบ", "crackers", models.CategorySnack, per100g(500, 4, 70, 23, 1, 700),
		portions{"1 ถุง": 30}, "prawn crackers", "khao kriap"),
	dish("ถั่วลิสงคั่ว", "roasted peanuts", models.CategorySnack, per100g(585, 26, 21, 49, 8, 6),
		portions{"1 กำ": 30, "1 ถุง": 50}, "peanuts", "nuts"),
	dish("สาคูไส้หมู", "tapioca dumplings with pork", models.CategorySnack, per100g(200, 4, 35, 5, 1, 300),
		portions{"1 ลูก": 15}, "sakoo sai moo"),

	// fruit
	dish("มะม่วง", "mango", models.CategoryFruit, per100g(60, 0.8, 15, 0.4, 1.6, 1),
		portions{"1 ลูก": 200, "1/2 ลูก": 100}, "ripe mango"),
	dish("กล้วย", "banana", models.CategoryFruit, per100g(89, 1.1, 23, 0.3, 2.6, 1),
		portions{"1 ผล": 100, "1 ลูก": 100}),
	dish("แตงโม", "watermelon", models.CategoryFruit, per100g(30, 0.6, 7.6, 0.2, 0.4, 1),
		portions{"1 ชิ้น": 150}),
	dish("สับปะรด", "pineapple", models.CategoryFruit, per100g(50, 0.5, 13, 0.1, 1.4, 1),
		portions{"1 ชิ้น": 80}),
	dish("มะละกอ", "papaya", models.CategoryFruit, per100g(43, 0.5, 11, 0.3, 1.7, 8),
		portions{"1 ชิ้น": 100}, "ripe papaya"),
	dish("ทุเรียน", "durian", models.CategoryFruit, per100g(147, 1.5, 27, 5.3, 3.8, 2),
		portions{"1 พู": 60}),
	dish("ผลไม้รวม", "mixed fruit", models.CategoryFruit, per100g(50, 0.7, 12.5, 0.2, 1.8, 3),
		portions{"1 จาน": 150, "1 ถ้วย": 150}, "fruit salad"),

	// dairy
	dish("โยเกิร์ต", "yogurt", models.CategoryDairy, per100g(75, 3.5, 11, 1.8, 0, 50),
		portions{"1 ถ้วย": 135}, "yoghurt", "frozen yogurt"),
	dish("ชีส", "cheese", models.CategoryDairy, per100g(400, 25, 1.3, 33, 0, 620),
		portions{"1 แผ่น": 20}, "cheese plate"),

	// beverages
	dish("ชาเย็น", "thai iced tea", models.CategoryBeverage, per100g(80, 1, 14, 2.4, 0, 30),
		portions{"1 แก้ว": 350}, "thai tea", "cha yen"),
	dish("ชานมไข่มุก", "bubble milk tea", models.CategoryBeverage, per100g(95, 0.8, 19, 2, 0.2, 30),
		portions{"1 แก้ว": 500}, "boba", "bubble tea", "milk tea"),
	dish("นมถั่วเหลือง", "soy milk", models.CategoryBeverage, per100g(45, 3, 5, 1.8, 0.5, 40),
		portions{"1 แก้ว": 240, "1 กล่อง": 250}, "soymilk"),
	dish("กาแฟเย็น", "iced coffee", models.CategoryBeverage, per100g(75, 1.2, 13, 2.2, 0, 35),
		portions{"1 แก้ว": 350}, "latte", "cappuccino"),
	dish("กาแฟดำ", "black coffee", models.CategoryBeverage, per100g(2, 0.3, 0, 0, 0, 2),
		portions{"1 แก้ว": 240}, "americano", "espresso"),
	dish("น้ำอัดลม", "soft drink", models.CategoryBeverage, per100g(42, 0, 10.6, 0, 0, 4),
		portions{"1 กระป๋อง": 325, "1 แก้ว": 240, "1 ขวด": 500}, "soda", "cola"),
	dish("น้ำส้มคั้น", "orange juice", models.CategoryBeverage, per100g(45, 0.7, 10.4, 0.2, 0.2, 1),
		portions{"1 แก้ว": 240}, "juice"),
	dish("น้ำมะพร้าว", "coconut water", models.CategoryBeverage, per100g(19, 0.7, 3.7, 0.2, 1.1, 105),
		portions{"1 ลูก": 300, "1 แก้ว": 240}, "young coconut"),
	dish("น้ำเปล่า", "drinking water", models.CategoryBeverage, per100g(0, 0, 0, 0, 0, 0),
		portions{"1 แก้ว": 240, "1 ขวด": 600}, "bottled water"),

	// desserts
	dish("บัวลอย", "rice balls in coconut milk", models.CategoryDessert, per100g(150, 2, 25, 5, 0.5, 40),
		portions{"1 ถ้วย": 200}, "bua loy"),
	dish("ลอดช่อง", "pandan jelly in coconut milk", models.CategoryDessert, per100g(110, 0.8, 20, 3.5, 0.3, 30),
		portions{"1 ถ้วย": 250}, "lod chong", "cendol"),
	dish("ทับทิมกรอบ", "red rubies", models.CategoryDessert, per100g(120, 1, 23, 3.5, 0.5, 25),
		portions{"1 ถ้วย": 250}, "tub tim grob"),
	dish("ไอศกรีม", "ice cream", models.CategoryDessert, per100g(207, 3.5, 24, 11, 0.7, 80),
		portions{"1 ถ้วย": 100, "1 ลูก": 60, "1 โคน": 70}, "gelato", "sundae"),
	dish("ขนมชั้น", "layered pandan dessert", models.CategoryDessert, per100g(220, 1.5, 42, 5, 0.5, 40),
		portions{"1 ชิ้น": 40}, "khanom chan"),
	dish("ขนมครก", "coconut rice pancakes", models.CategoryDessert, per100g(230, 3, 28, 12, 0.8, 120),
		portions{"1 คู่": 30, "1 กล่อง": 150}, "khanom krok"),
	dish("เค้ก", "cake", models.CategoryDessert, per100g(350, 5, 50, 15, 1, 300),
		portions{"1 ชิ้น": 80}, "cheesecake", "cupcake", "tiramisu"),
	dish("โรตี", "roti", models.CategoryDessert, per100g(300, 6, 40, 13, 1.5, 350),
		portions{"1 แผ่น": 80}, "pancake", "crepe", "waffle"),
	dish("ฟักทองแกงบวด", "pumpkin in coconut milk", models.CategoryDessert, per100g(130, 1.3, 20, 5, 1.2, 60),
		portions{"1 ถ้วย": 200}, "fak thong kaeng buat"),
	dish("สังขยาฟักทอง", "pumpkin custard", models.CategoryDessert, per100g(200, 5, 28, 8, 1, 80),
		portions{"1 ชิ้น": 80}, "custard", "creme brulee"),
	dish("นมจืด", "milk", models.CategoryDairy, per100g(64, 3.3, 4.8, 3.6, 0, 44),
		portions{"1 กล่อง": 200, "1 แก้ว": 240}, "fresh milk"),
}
