package customer

// DateLayout is the consentAt format.
const DateLayout = "2006-01-02"

// ConsentWindowDays bounds how far back a consent date can go.
const ConsentWindowDays = 180

var firstNames = []string{
	"Raj", "Priya", "Amit", "Anita", "Rahul", "Sneha", "Vikram", "Kavya",
	"Arjun", "Meera", "Karan", "Divya", "Rohan", "Pooja", "Siddharth", "Neha",
	"Aditya", "Shreya", "Varun", "Anjali", "Kunal", "Swati", "Manish", "Ishita",
	"Ravi", "Kiran", "Nikhil", "Preeti", "Suresh", "Radha", "Pankaj", "Jyoti",
	"Mohan", "Sonia", "Deepak", "Riya", "Anil", "Nidhi", "Sunil", "Aarti",
	"Vishal", "Seema", "Gaurav", "Komal", "Ashish", "Ira", "Ritesh", "Sakshi",
	"Harsh", "Diya", "Yash", "Aadhya", "Kabir", "Ananya", "Vihaan", "Myra",
	"Aarav", "Aisha", "Atharv", "Reyansh", "Ishaan", "Vivaan", "Shaurya", "Dhruv",
}

// lastNames keeps its repeats; they weight the draw.
var lastNames = []string{
	"Sharma", "Patel", "Singh", "Kumar", "Gupta", "Verma", "Agarwal", "Yadav",
	"Mehta", "Jain", "Reddy", "Malhotra", "Chopra", "Kapoor", "Bansal", "Rao",
	"Khanna", "Joshi", "Nair", "Iyer", "Das", "Roy", "Ghosh", "Pandey",
	"Mishra", "Tripathi", "Saxena", "Shetty", "Bhat", "Chatterjee", "Malhotra", "Agarwal",
}

// EmailDomains is the fixed domain pool.
var EmailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "rediffmail.com",
	"business.in", "company.com", "enterprise.in",
}

// Tags is the tag vocabulary.
var Tags = []string{"vip", "regular", "premium", "new", "trial", "loyal", "frequent"}

// mobile numbers start with 6-9
const phoneLeadDigits = "6789"

const phoneLen = 10

// field probabilities
const (
	emailChance    = 0.8
	whatsappChance = 0.3
	consentChance  = 0.9
)
